package reflectx

import (
	"math"
	"reflect"
)

// IsAbsent reports whether v should be treated as "no message".
//
// Nil values of every nillable kind (pointers, interfaces, maps, slices, channels
// and functions) are absent, as are the empty string, numeric zero, NaN and false.
// Structs and arrays are never absent: an empty struct is still a message.
// Pointers are not followed, a pointer to a zero value is present.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}

	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return val.IsNil()
	case reflect.String:
		return val.Len() == 0
	case reflect.Bool:
		return !val.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return val.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return val.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := val.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return val.Complex() == 0
	}
	return false
}
