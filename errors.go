package buddy

import cerrors "github.com/cockroachdb/errors"

// PowerOfTwoError is returned (wrapped) when a value that is required to be
// a power of two is not.
var PowerOfTwoError error = cerrors.New("value must be a power of two")

// OrderRangeError is returned (wrapped) when a requested maxPower falls
// outside [MinOrder, 31].
var OrderRangeError error = cerrors.New("maxPower out of supported range")

// checkPow2 returns a wrapped PowerOfTwoError if value is not a power of
// two.
func checkPow2(value uint, name string) error {
	if value == 0 || value&(value-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, value)
	}
	return nil
}
