package mongokit

import "errors"

var (
	// ErrInvalidConfig is returned by New when the supplied configuration is
	// missing required fields or contains out-of-range values.
	ErrInvalidConfig = errors.New("invalid mongo configuration")

	// ErrEmptyCollectionName is returned when a collection operation is
	// invoked with an empty name.
	ErrEmptyCollectionName = errors.New("collection name cannot be empty")

	// ErrFailedToConnect wraps transport-level connection failures.
	ErrFailedToConnect = errors.New("failed to connect to mongo")

	// ErrPingFailed wraps connectivity probe failures on an open connection.
	ErrPingFailed = errors.New("mongo ping failed")

	// ErrNotConnected is returned when an operation requires an open
	// connection but the manager is closed.
	ErrNotConnected = errors.New("mongo connection is not open")

	// ErrDisconnect wraps failures while closing the connection.
	ErrDisconnect = errors.New("failed to disconnect from mongo")

	// ErrAuthenticationFailed wraps credential rejections. The driver's own
	// error is always joined when one is available.
	ErrAuthenticationFailed = errors.New("could not authenticate against mongo")

	// ErrCreateCollection wraps collection creation failures.
	ErrCreateCollection = errors.New("failed to create mongo collection")

	// ErrDropCollection wraps collection drop failures.
	ErrDropCollection = errors.New("failed to drop mongo collection")

	// ErrCreateIndex wraps index creation failures.
	ErrCreateIndex = errors.New("failed to create mongo index")

	// ErrHealthcheckFailed is returned by the Healthcheck probe when the
	// connection is unavailable.
	ErrHealthcheckFailed = errors.New("mongo healthcheck failed")
)
