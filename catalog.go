package sdrfeatures

import "sort"

// features is the static catalog mapping feature names to the requirements
// gating them. Built once, never mutated. Requirement order is fixed so
// diagnostics come out deterministic, but evaluation does not depend on it.
var features = map[string][]string{
	// core features; the host won't start without these
	"core": {"csdr"},
	// the different SDR device families and their requirements
	"rtl_sdr":       {"rtl_connector"},
	"rtl_sdr_soapy": {"soapy_connector", "soapy_rtl_sdr"},
	"rtl_tcp":       {"rtl_tcp_connector"},
	"sdrplay":       {"soapy_connector", "soapy_sdrplay"},
	"hackrf":        {"soapy_connector", "soapy_hackrf"},
	"perseussdr":    {"perseustest", "nmux"},
	"airspy":        {"soapy_connector", "soapy_airspy"},
	"airspyhf":      {"soapy_connector", "soapy_airspyhf"},
	"afedri":        {"soapy_connector", "soapy_afedri"},
	"lime_sdr":      {"soapy_connector", "soapy_lime_sdr"},
	"fifi_sdr":      {"alsa", "rockprog", "nmux"},
	"pluto_sdr":     {"soapy_connector", "soapy_pluto_sdr"},
	"soapy_remote":  {"soapy_connector", "soapy_remote"},
	"uhd":           {"soapy_connector", "soapy_uhd"},
	"radioberry":    {"soapy_connector", "soapy_radioberry"},
	"fcdpp":         {"soapy_connector", "soapy_fcdpp"},
	"bladerf":       {"soapy_connector", "soapy_bladerf"},
	"sddc":          {"sddc_connector"},
	"sddc_soapy":    {"soapy_connector", "soapy_sddc"},
	"hpsdr":         {"hpsdr_connector"},
	"runds":         {"runds_connector"},
	// optional decoder features and their requirements
	"digital_voice_digiham": {"digiham", "codecserver_ambe"},
	"digital_voice_freedv":  {"freedv_rx", "codec2"},
	"digital_voice_m17":     {"m17_demod"},
	"wsjt-x":                {"wsjtx"},
	"wsjt-x-2-3":            {"wsjtx_2_3"},
	"wsjt-x-2-4":            {"wsjtx_2_4"},
	"msk144":                {"msk144decoder"},
	"packet":                {"direwolf"},
	"pocsag":                {"digiham"},
	"js8call":               {"js8"},
	"drm":                   {"dream"},
	"dump1090":              {"dump1090"},
	"ism":                   {"rtl_433"},
	"dumphfdl":              {"dumphfdl"},
	"dumpvdl2":              {"dumpvdl2"},
	"redsea":                {"redsea"},
	"dab":                   {"csdreti", "dablin"},
	"mqtt":                  {"mosquitto"},
}

// FeatureNames returns every catalog feature name, sorted.
func FeatureNames() []string {
	names := make([]string, 0, len(features))
	for name := range features {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
