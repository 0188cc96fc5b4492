package overlay

import (
	"strings"
	"sync"
)

type valueKind uint8

const (
	valueString valueKind = iota
	valueInt
)

// Value is a loosely typed argument passed through the function registry.
// The registry validates the kind and arity of values before the splice core
// runs; the core itself only ever sees correctly shaped arguments.
type Value struct {
	kind valueKind
	str  StringArg
	num  IntArg
}

// StringValue wraps a string argument for a registry call.
func StringValue(a StringArg) Value {
	return Value{kind: valueString, str: a}
}

// IntValue wraps an integer argument for a registry call.
func IntValue(a IntArg) Value {
	return Value{kind: valueInt, num: a}
}

// Function describes a registered splice function.
type Function struct {
	// Name is the canonical function name.
	Name string
	// Mode selects byte or code point measurement.
	Mode Mode
	// CaseSensitive controls name matching: overlay is looked up
	// case-insensitively, overlayUTF8 case-sensitively.
	CaseSensitive bool
	// MinArgs and MaxArgs bound the accepted argument count.
	MinArgs int
	MaxArgs int
}

// Registry maps function names to their descriptors and performs the argument
// validation that precedes batch execution. This is the only component that
// produces user-visible errors; the splice core clamps instead of failing.
type Registry struct {
	mu     sync.RWMutex
	exact  map[string]*Function
	folded map[string]*Function
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		exact:  make(map[string]*Function),
		folded: make(map[string]*Function),
	}
}

// Register adds a function to the registry. Registering a name twice, or a
// case-insensitive name that collides with an existing one, is an error.
func (r *Registry) Register(f *Function) error {
	if f == nil || f.Name == "" {
		return NewError(ErrRegistry, "function name must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.exact[f.Name]; ok {
		return Errorf(ErrRegistry, "function %q already registered", f.Name)
	}
	lower := strings.ToLower(f.Name)
	if !f.CaseSensitive {
		if _, ok := r.folded[lower]; ok {
			return Errorf(ErrRegistry, "function %q already registered", f.Name)
		}
	}

	r.exact[f.Name] = f
	if !f.CaseSensitive {
		r.folded[lower] = f
	}
	return nil
}

// Lookup finds a function by name. Exact matches win; otherwise the name is
// matched case-insensitively against functions registered that way.
func (r *Registry) Lookup(name string) (*Function, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if f, ok := r.exact[name]; ok {
		return f, nil
	}
	if f, ok := r.folded[strings.ToLower(name)]; ok {
		return f, nil
	}
	return nil, Errorf(ErrRegistry, "unknown function %q", name)
}

// Call looks up a function, validates the arguments, and executes it over the
// batch. Arguments are: input string, replace string, offset integer, and an
// optional length integer.
func (r *Registry) Call(name string, args []Value, rows int) (*StringColumn, error) {
	f, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	if len(args) < f.MinArgs || len(args) > f.MaxArgs {
		return nil, Errorf(ErrArgument, "%s expects %d to %d arguments, got %d",
			f.Name, f.MinArgs, f.MaxArgs, len(args))
	}
	if args[0].kind != valueString {
		return nil, Errorf(ErrType, "argument 1 of %s must be a string", f.Name)
	}
	if args[1].kind != valueString {
		return nil, Errorf(ErrType, "argument 2 of %s must be a string", f.Name)
	}
	if args[2].kind != valueInt || args[2].num.IsAbsent() {
		return nil, Errorf(ErrType, "argument 3 of %s must be an integer", f.Name)
	}

	length := NoLength()
	if len(args) > 3 {
		if args[3].kind != valueInt || args[3].num.IsAbsent() {
			return nil, Errorf(ErrType, "argument 4 of %s must be an integer", f.Name)
		}
		length = args[3].num
	}

	return Exec(args[0].str, args[1].str, args[2].num, length, rows, f.Mode)
}

// defaultRegistry holds the two built-in splice functions.
var defaultRegistry = func() *Registry {
	r := NewRegistry()
	r.Register(&Function{Name: "overlay", Mode: Bytes, MinArgs: 3, MaxArgs: 4})
	r.Register(&Function{Name: "overlayUTF8", Mode: CodePoints, CaseSensitive: true, MinArgs: 3, MaxArgs: 4})
	return r
}()

// DefaultRegistry returns the registry holding the built-in functions:
// overlay (matched case-insensitively) and overlayUTF8 (matched
// case-sensitively).
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Call invokes a built-in function by name through the default registry.
func Call(name string, args []Value, rows int) (*StringColumn, error) {
	return defaultRegistry.Call(name, args, rows)
}
