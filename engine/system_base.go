package engine

// System is one step of the per-tick pipeline
// Update runs to completion synchronously; Priority fixes the order (lower first)
type System interface {
	Name() string
	Priority() int
	Update()
}
