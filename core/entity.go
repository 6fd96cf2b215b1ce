package core

// Entity is a stable handle into the world's component arenas
// Zero is never issued and means "no entity"
type Entity uint64

// Valid reports whether the handle was ever issued
func (e Entity) Valid() bool {
	return e != 0
}
