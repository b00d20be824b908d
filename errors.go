package koch

import "errors"

// ErrAborted reports that generation was cancelled before it produced any
// geometry for the current request, either because an upstream input was
// missing or because the context was cancelled.
var ErrAborted = errors.New("koch: aborted")

// ErrDepthOutOfRange reports a recursion depth outside the accepted bounds.
var ErrDepthOutOfRange = errors.New("koch: depth out of range")
