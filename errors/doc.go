// Package errors provides standardized error handling for ringstore packages.
//
// # Overview
//
// Errors fall into three classes: Transient (the condition may clear if the caller
// retries later), Invalid (bad input or configuration, do not retry), and Fatal
// (unrecoverable). Classification travels with the error as a *ClassifiedError and
// works with errors.Is and errors.As through the wrap chain.
//
// # Error Wrapping Pattern
//
// All wrapping follows the format:
//
//	Component.Method: action failed: <underlying error>
//
// For example, a write into a full store produces:
//
//	RingStore.Write: store value failed: ring store full
//
// # Usage
//
//	if err := store.Write(v); err != nil {
//		if errors.IsTransient(err) {
//			// full for now, drain and try again
//		}
//	}
//
// Sentinels are compared with the standard library:
//
//	stderrors.Is(err, ringstore.ErrFull)
package errors
