package formstate

import "reflect"

// valuesEqual backs HasChanged. Comparable values use ==, which keeps
// time.Time instances with the same instant but different locations (or
// monotonic readings) distinct. Slices and maps compare by identity: two
// separately built slices with equal contents count as changed. Remaining
// non-comparable values (structs holding slices, for example) fall back to
// reflect.DeepEqual.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Comparable() && vb.Comparable() {
		return a == b
	}

	switch va.Kind() {
	case reflect.Slice:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	case reflect.Func:
		return va.IsNil() && vb.IsNil()
	default:
		return reflect.DeepEqual(a, b)
	}
}
