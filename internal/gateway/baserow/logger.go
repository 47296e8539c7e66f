package baserow

import (
	"fmt"

	"shipment-photo-dashboard/internal/logx"
)

// restyLogger routes resty's internal messages through logx.
type restyLogger struct {
	l logx.Logger
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.l.Error("resty", logx.String("detail", fmt.Sprintf(format, v...)))
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.l.Warn("resty", logx.String("detail", fmt.Sprintf(format, v...)))
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.l.Debug("resty", logx.String("detail", fmt.Sprintf(format, v...)))
}
