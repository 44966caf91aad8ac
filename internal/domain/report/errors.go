package report

import "errors"

var ErrNoAttendanceRecords = errors.New("no attendance record found for this employee")
