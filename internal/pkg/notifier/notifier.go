package notifier

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Notifier surfaces a pipeline failure to the user. The host shell shows
// the message in the originating page context; the default implementation
// here logs it.
type Notifier interface {
	NotifyFailure(srcURL string, err error)
}

type logNotifier struct{}

func NewLogNotifier() Notifier {
	return &logNotifier{}
}

func (n *logNotifier) NotifyFailure(srcURL string, err error) {
	logrus.WithField("src_url", srcURL).Error(FormatFailure(err))
}

// FormatFailure is the exact user-facing message shape.
func FormatFailure(err error) string {
	return fmt.Sprintf("Failed to convert and download image: %v", err)
}
