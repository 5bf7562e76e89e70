package db

// Status is a HAP status code reported in per-characteristic read/write
// responses.
type Status int

const (
	StatusSuccess                    Status = 0
	StatusInsufficientPrivileges     Status = -70401
	StatusServiceCommunicationFailed Status = -70402
	StatusResourceBusy               Status = -70403
	StatusReadOnlyCharacteristic     Status = -70404
	StatusWriteOnlyCharacteristic    Status = -70405
	StatusNotificationNotSupported   Status = -70406
	StatusOutOfResource              Status = -70407
	StatusOperationTimedOut          Status = -70408
	StatusResourceDoesNotExist       Status = -70409
	StatusInvalidValueInRequest      Status = -70410
	StatusInsufficientAuthorization  Status = -70411
)
