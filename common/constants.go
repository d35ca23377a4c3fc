package common

import (
	"time"
)

const DefaultBaseURL = "https://api.meraki.com/api/v1"

const DefaultClientTimeout = time.Minute

// A single attempt: failures are fatal for the run.
const DefaultHttpTries = 1

const DefaultSourceTag = "copy_client_names_src"
const DefaultDestinationTag = "copy_client_names_dst"

// Clients seen over the trailing 31 days, the longest window the dashboard accepts.
const DefaultClientTimespan = 31 * 24 * time.Hour
const DefaultClientsPerPage = 1000

const DefaultDevicePolicy = "Normal"

const DefaultLogLevel = "info"
