package stats

/*
This file defines all the metrics being collected. As new metrics are added please follow this pattern.
*/

const (
	/************************* Dashboard API metrics **************************/
	/*
		the number of HTTP requests sent to the dashboard, pages included
	*/
	DashboardRequestCounter = "requestCounter"

	/*
		the number of dashboard requests that failed (transport error or non 2xx status)
	*/
	DashboardRequestErrCounter = "requestErrCounter"

	/*
		amount of time each dashboard request takes, from send until the body is decoded
	*/
	DashboardRequestLatency_ms = "requestLatency_ms"

	/************************* Copy run metrics **************************/
	/*
		the number of networks listed for the organization
	*/
	CopyNetworksListedGauge = "networksListedGauge"

	/*
		the number of clients fetched from the source network
	*/
	CopySourceClientsGauge = "sourceClientsGauge"

	/*
		the number of clients fetched from the destination network
	*/
	CopyDestinationClientsGauge = "destinationClientsGauge"

	/*
		the number of destination clients with a source client sharing their MAC
	*/
	CopyMatchedCounter = "matchedCounter"

	/*
		the number of destination clients with no source client sharing their MAC
	*/
	CopyUnmatchedCounter = "unmatchedCounter"

	/*
		the number of provisioning requests accepted by the dashboard
	*/
	CopyProvisionedCounter = "provisionedCounter"
)
