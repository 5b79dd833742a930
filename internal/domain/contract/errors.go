package contract

import "errors"

var (
	ErrContractNotFound  = errors.New("contract history not found")
	ErrDependantNotFound = errors.New("dependant not found")
)
