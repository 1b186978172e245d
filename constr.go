package iso8601

/*
constr.go contains constraint and constraint group components which
serve to restrict the values a decode operation may produce.
*/

import "golang.org/x/exp/constraints"

/*
Constraint implements a generic closure function signature meant to enforce
the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice instances
are added (and, thus, evaluated) in the order in which they are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint] instances
against x which reside within the receiver instance. Evaluation stops at the
first failure.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T.
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a value
of any ordered type is between the specified minimum and maximum.
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || val > max {
			err = mkerr("value is out of range")
		}
		return
	}
}

/*
TimestampRangeConstraint returns an instance of [Constraint] that checks
if a [Timestamp] falls within the inclusive window [min, max].
*/
func TimestampRangeConstraint(min, max Timestamp) Constraint[Timestamp] {
	return func(val Timestamp) (err error) {
		if !within(val, min, max) {
			err = mkerrf("timestamp ", int64(val), " is not in allowed range [",
				int64(min), ", ", int64(max), "]")
		}
		return
	}
}

// within reports whether min <= v <= max.
func within[T constraints.Integer](v, min, max T) bool {
	return min <= v && v <= max
}
