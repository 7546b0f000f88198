package validation

// Check inspects a payload and returns nil or a single error.
type Check func(p Payload) error

// Pipeline is a fixed sequence of checks.
type Pipeline []Check

// NewPipeline builds a pipeline that runs checks in the given order.
func NewPipeline(checks ...Check) Pipeline {
	return Pipeline(checks)
}

// Validate runs the checks in order and returns the first failure. Checks after
// a failure are not invoked.
func (p Pipeline) Validate(payload Payload) error {
	for _, check := range p {
		if err := check(payload); err != nil {
			return err
		}
	}
	return nil
}
