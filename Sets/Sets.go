package Sets

// Set holds distinct elements.
type Set[E any] interface {
	//Insert e, returns false if e was already present.
	Insert(E) bool
	//Remove e, returns false if e was absent.
	Remove(E) bool
	Has(E) bool
	Size() int
	Clear()
}
