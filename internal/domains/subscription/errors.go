package subscription

import "errors"

var (
	ErrAlreadySubscribed = errors.New("already subscribed to this author")
	ErrNotSubscribed     = errors.New("not subscribed to this author")
	ErrSelfSubscription  = errors.New("cannot subscribe to yourself")
)
