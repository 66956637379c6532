package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"sec-platform/internal/apperr"
)

// parseID converts a boundary id string to the store's key type.
func parseID(hex string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, apperr.InvalidID(hex)
	}
	return oid, nil
}

func parseIDs(hexes []string) ([]bson.ObjectID, error) {
	oids := make([]bson.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		oid, err := parseID(h)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}
	return oids, nil
}

// prefixFields addresses a flat field patch at a nesting depth, e.g.
// {"name": x} becomes {"classes.$[cls].name": x}. The arrayFilters supplied
// alongside the prefix pin the patch to the element matching the target id,
// so a same-shaped sibling is never touched.
func prefixFields(prefix string, fields bson.M) bson.M {
	out := bson.M{}
	for k, v := range fields {
		out[prefix+k] = v
	}
	return out
}
