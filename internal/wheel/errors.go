package wheel

import "errors"

var (
	ErrEmptyRewardList  = errors.New("reward list is empty")
	ErrSpinInProgress   = errors.New("a spin is already in progress")
	ErrRemovalPending   = errors.New("a removal is awaiting confirmation")
	ErrNoPendingRemoval = errors.New("no removal awaiting confirmation")
	ErrRewardNotFound   = errors.New("reward not found")
)
