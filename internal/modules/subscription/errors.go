package subscription

import "errors"

var (
	ErrAlreadySubscribed    = errors.New("account already has a subscription")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrRenewNotAllowed      = errors.New("subscription window has not ended yet")
	ErrChangeNotAllowed     = errors.New("tier change not allowed outside an active window")
)
