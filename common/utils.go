package common

import (
	uuid "github.com/nu7hatch/gouuid"
)

// GenRunID returns a random uuid identifying one run in the log file.
func GenRunID() string {
	// uuid.NewV4() reads crypto/rand, which only fails if the OS source is broken.
	for {
		if id, err := uuid.NewV4(); err == nil {
			return id.String()
		}
	}
}
