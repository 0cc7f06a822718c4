package service

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrIllegalTransition = errors.New("illegal transition of checkout step")
	ErrStepLocked        = errors.New("step is locked until the preceding step is completed")
)
