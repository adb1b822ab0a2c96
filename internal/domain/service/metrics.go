package service

// Metrics records pipeline observations.
type Metrics interface {
	CacheLookup(dataClass string, hit bool)
	UpstreamFailure(source string)
	PermissionDecision(reason string, allowed bool)
}
