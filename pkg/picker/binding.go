package picker

// Binding is a two-way connection to state owned by the host. The picker
// reads the current value with Get and requests changes with Set.
type Binding[T any] interface {
	Get() T
	Set(T)
}

// Var is a Binding backed by a field. OnChange, when set, runs after every
// Set.
type Var[T any] struct {
	value    T
	OnChange func(T)
}

// NewVar returns a Var holding initial.
func NewVar[T any](initial T) *Var[T] {
	return &Var[T]{value: initial}
}

// Get implements Binding.
func (v *Var[T]) Get() T { return v.value }

// Set implements Binding.
func (v *Var[T]) Set(value T) {
	v.value = value
	if v.OnChange != nil {
		v.OnChange(value)
	}
}

// Func adapts a getter/setter pair into a Binding.
type Func[T any] struct {
	GetFunc func() T
	SetFunc func(T)
}

// Get implements Binding.
func (f Func[T]) Get() T { return f.GetFunc() }

// Set implements Binding.
func (f Func[T]) Set(v T) {
	if f.SetFunc != nil {
		f.SetFunc(v)
	}
}

// Constant is a read-only Binding; Set is ignored.
type Constant[T any] struct {
	Value T
}

// Get implements Binding.
func (c Constant[T]) Get() T { return c.Value }

// Set implements Binding.
func (Constant[T]) Set(T) {}
