package ring

import (
	"reflect"
	"sync"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// ErrNoInstance gets returned when no euclidean ring instance is registered
// for the requested numeric kind.
var ErrNoInstance = ierrors.New("no euclidean ring instance registered")

var (
	instancesMutex sync.RWMutex
	instances      = make(map[reflect.Type]any)
)

// Register makes the given instance the default euclidean ring for T,
// replacing any previously registered one. All kinds supported by this
// package are registered at init time; Register only needs to be called for
// external numeric kinds.
func Register[T any](instance EuclideanRing[T]) {
	instancesMutex.Lock()
	defer instancesMutex.Unlock()

	instances[reflect.TypeOf((*T)(nil)).Elem()] = instance
}

// For resolves the euclidean ring instance registered for the numeric kind T.
func For[T any]() (EuclideanRing[T], error) {
	instancesMutex.RLock()
	defer instancesMutex.RUnlock()

	kind := reflect.TypeOf((*T)(nil)).Elem()
	instance, exists := instances[kind]
	if !exists {
		return nil, ierrors.Wrapf(ErrNoInstance, "kind %s", kind)
	}

	//nolint:forcetypeassert // the registry only ever maps T to EuclideanRing[T]
	return instance.(EuclideanRing[T]), nil
}

// MustFor resolves the euclidean ring instance for T and panics if none is
// registered.
func MustFor[T any]() EuclideanRing[T] {
	return lo.PanicOnErr(For[T]())
}

// Quot returns the truncating quotient of x and y using the registered
// instance for T.
func Quot[T any](x, y T) T {
	return MustFor[T]().Quot(x, y)
}

// Mod returns the remainder of x and y using the registered instance for T.
func Mod[T any](x, y T) T {
	return MustFor[T]().Mod(x, y)
}

// QuotMod returns the truncating quotient and the remainder of x and y using
// the registered instance for T.
func QuotMod[T any](x, y T) (T, T) {
	return MustFor[T]().QuotMod(x, y)
}

// Gcd returns the greatest common divisor of x and y using the registered
// instance for T.
func Gcd[T any](x, y T) T {
	return MustFor[T]().Gcd(x, y)
}

// Lcm returns the least common multiple of x and y using the registered
// instance for T.
func Lcm[T any](x, y T) T {
	return MustFor[T]().Lcm(x, y)
}
