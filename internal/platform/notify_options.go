package platform

// AppName is the application name reported to the notification service.
const AppName = "Sprite Animator"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// Timeout in milliseconds, where the platform supports one. Zero uses the
	// platform default.
	Timeout int32
}
