package drivers

import "github.com/google/uuid"

// Redis key scheme shared by the presence store and the candidate lookup.
const (
	// GeoIndexKey is the geo sorted set of online driver positions
	GeoIndexKey = "drivers:geo"

	// OnlineSetKey is the set of driver IDs currently flagged online
	OnlineSetKey = "drivers:online"
)

// PresenceKey is the hash holding one driver's presence record
func PresenceKey(driverID uuid.UUID) string {
	return "driver:presence:" + driverID.String()
}
