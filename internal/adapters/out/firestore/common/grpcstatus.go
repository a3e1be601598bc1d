package common

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsNotFound reports whether err is a Firestore NotFound gRPC status.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// IsAlreadyExists reports whether err is a Firestore AlreadyExists gRPC
// status (Create on an existing document).
func IsAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
