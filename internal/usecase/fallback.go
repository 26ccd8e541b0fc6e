package usecase

// FallbackPolicy decides what happens when an upstream dependency
// fails. The lenient policy preserves the original degrade-to-mock
// behavior so the wizard stays completable with the backend down; the
// strict policy surfaces every upstream failure instead. Local draft
// validation is never subject to the policy.
type FallbackPolicy struct {
	AssumeAvailable   bool
	SynthesizeBooking bool
	SynthesizePayment bool
	ServeDemoCatalog  bool
	ServeDemoProfile  bool
}

func LenientFallback() FallbackPolicy {
	return FallbackPolicy{
		AssumeAvailable:   true,
		SynthesizeBooking: true,
		SynthesizePayment: true,
		ServeDemoCatalog:  true,
		ServeDemoProfile:  true,
	}
}

func StrictFallback() FallbackPolicy {
	return FallbackPolicy{}
}

func FallbackPolicyFromMode(mode string) FallbackPolicy {
	if mode == "strict" {
		return StrictFallback()
	}
	return LenientFallback()
}
