package memory

// copyID evita que el caller y el store compartan el mismo *int64.
func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func sameID(ref *int64, id int64) bool {
	return ref != nil && *ref == id
}
