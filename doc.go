// Package sdrfeatures provides runtime detection of optional SDR tooling.
//
// An SDR receiver host depends on a zoo of external software: hardware
// connectors, demodulators, digimode decoders, and auxiliary services.
// Most of it is optional, and none of it is guaranteed to be installed.
// This package probes the host once, on demand, and answers the single
// question the host application needs: "can I enable feature X here?"
//
// # Model
//
// A Feature is a named capability (a device family like "sdrplay", a
// decoder like "wsjt-x"). Each feature is gated on one or more named
// requirements, and a feature is available iff every one of its
// requirements is. Each requirement is backed by exactly one detection
// strategy, registered at construction time:
//   - a pkg-config query for an optional C library, with a minimum version
//   - a "does this command run" probe of an external binary
//   - a versioned-connector probe that parses "<command> version <v>" output
//   - a driver-enumeration probe against "soapy_connector --listdrivers"
//   - a network round trip to the configured codec server
//
// # Quick Check
//
//	d := sdrfeatures.New(sdrfeatures.WithTempDir(cfg.TempDir))
//	ok, err := d.IsAvailable("wsjt-x")
//	if err != nil {
//	    var ufe *sdrfeatures.UnknownFeatureError
//	    if errors.As(err, &ufe) {
//	        log.Fatalf("no such feature: %s", ufe.Name)
//	    }
//	    log.Fatal(err)
//	}
//
// # Diagnostics
//
//	report := d.Report()
//	fmt.Print(report) // human-readable summary
//	missing, _ := d.FailedRequirements("digital_voice_digiham")
//
// # Caching
//
// Probing is expensive: it spawns processes and may perform network calls.
// Results are therefore cached per requirement for a bounded window
// (2 hours by default) and re-probed lazily after expiry. The cache is
// owned by the Detector; concurrent callers asking for the same
// requirement share a single in-flight probe.
//
// Detection never modifies the host. Every failure mode short of an
// unknown feature name degrades to "not available".
package sdrfeatures
