package biquad

import "errors"

// ErrBufferMismatch is returned by [ChannelStates.Process] when the channel
// buffers do not match the configured channel count or are shorter than the
// requested sample count.
var ErrBufferMismatch = errors.New("biquad: channel buffer mismatch")
