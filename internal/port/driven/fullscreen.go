package driven

import "context"

// FullscreenMethod is one platform-specific way to present a surface fullscreen.
// Platforms expose several; callers try them in order.
type FullscreenMethod interface {
	// Name identifies the method in logs.
	Name() string

	// Enter requests fullscreen presentation. It may be rejected.
	Enter(ctx context.Context) error

	// Exit leaves fullscreen presentation.
	Exit(ctx context.Context) error
}
