package sdrfeatures

import (
	"regexp"
	"slices"
	"strings"
)

// The strategies below are the building blocks the requirement registry is
// assembled from. They all share the same shape: no arguments, a boolean,
// and every failure mode mapped to false.

// hasLibrary resolves an optional C library through pkg-config and
// compares its reported version loosely against min.
func (d *Detector) hasLibrary(pkg, min string) bool {
	version, ok := d.runner.FirstLine("pkg-config", "--modversion", pkg)
	if !ok || version == "" {
		return false
	}
	return ParseLoose(version).AtLeast(ParseLoose(min))
}

// hasLibraryStrict is hasLibrary with strict version comparison, for
// libraries that commit to a stable numeric versioning scheme.
func (d *Detector) hasLibraryStrict(pkg, min string) bool {
	version, ok := d.runner.FirstLine("pkg-config", "--modversion", pkg)
	if !ok || version == "" {
		return false
	}
	return StrictAtLeast(version, min)
}

// hasLibraryInstalled checks library presence only, with no version
// constraint.
func (d *Detector) hasLibraryInstalled(pkg string) bool {
	return d.runner.RunnableWithExit("pkg-config --exists "+pkg, 0)
}

// hasConnector invokes a connector binary with --version and expects the
// first output line to read "<command> version <v>". A missing binary or a
// line that doesn't match the pattern means the connector is unusable.
func (d *Detector) hasConnector(command, min string) bool {
	line, ok := d.runner.FirstLine(command, "--version")
	if !ok {
		return false
	}
	re := regexp.MustCompile("^" + regexp.QuoteMeta(command) + " version (.*)$")
	matches := re.FindStringSubmatch(line)
	if matches == nil {
		return false
	}
	return ParseLoose(matches[1]).AtLeast(ParseLoose(min))
}

// hasOwrxConnector applies the minimum version shared by all owrx_connector
// binaries.
func (d *Detector) hasOwrxConnector(command string) bool {
	return d.hasConnector(command, connectorMinVersion)
}

// hasSoapyDriver asks soapy_connector for its supported drivers, one per
// output line, and tests membership.
func (d *Detector) hasSoapyDriver(driver string) bool {
	drivers, ok := d.runner.Lines("soapy_connector", "--listdrivers")
	if !ok {
		return false
	}
	return slices.Contains(drivers, driver)
}

func (d *Detector) hasWSJTX() bool {
	return d.runner.Runnable("jt9") && d.runner.Runnable("wsprd")
}

var wsjtxVersionRe = regexp.MustCompile(`^WSJT-X (.*)$`)

// hasWSJTXVersion parses the output of wsjtx_app_version, which reports
// "WSJT-X <version>" on its first line.
func (d *Detector) hasWSJTXVersion(min string) bool {
	line, ok := d.runner.FirstLine("wsjtx_app_version", "--version")
	if !ok {
		return false
	}
	matches := wsjtxVersionRe.FindStringSubmatch(line)
	if matches == nil {
		return false
	}
	return ParseLoose(strings.TrimSpace(matches[1])).AtLeast(ParseLoose(min))
}
