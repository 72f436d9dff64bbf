package sdrfeatures

// Minimum versions the detection strategies insist on.
const (
	csdrMinVersion      = "0.19.0"
	digihamMinVersion   = "0.6"
	csdrEtiMinVersion   = "0.1"
	codec2MinVersion    = "1.0.1"
	connectorMinVersion = "0.7"
	sddcMinVersion      = "0.1"
	rundsMinVersion     = "0.2"
	wsjtx23MinVersion   = "2.3"
	wsjtx24MinVersion   = "2.4"
)

// builtinRequirements builds the requirement registry for d. Every name
// referenced by the catalog must have an entry here; the Detector treats a
// missing entry as a configuration defect and reports the requirement
// unavailable.
func builtinRequirements(d *Detector) map[string]Requirement {
	return map[string]Requirement{
		"csdr": {
			Detect: func() bool { return d.hasLibrary("csdr", csdrMinVersion) },
			Description: "The csdr library provides the demodulators and the DSP pipeline. " +
				"Debian and Ubuntu users can install the package libcsdr-dev.",
		},
		"nmux": {
			Detect: func() bool { return d.runner.Runnable("nmux --help") },
			Description: "nmux, shipped with the csdr project, multiplexes the internal IQ data streams. " +
				"Debian and Ubuntu users can install the package nmux.",
		},
		"perseustest": {
			Detect: func() bool { return d.runner.Runnable("perseustest -h") },
			Description: "The perseustest utility from libperseus-sdr drives Microtelecom Perseus HF receivers. " +
				"Debian and Ubuntu users can install the package perseus-tools.",
		},
		"digiham": {
			Detect: func() bool { return d.hasLibrary("digiham", digihamMinVersion) },
			Description: "The digiham library decodes digital voice modes (DMR, D-Star, YSF, NXDN). " +
				"Debian and Ubuntu users can install the package libdigiham-dev.",
		},
		"rtl_connector": {
			Detect: func() bool { return d.hasOwrxConnector("rtl_connector") },
			Description: "rtl_connector from the owrx_connector project interfaces RTL-SDR hardware directly. " +
				"Debian and Ubuntu users can install the package owrx-connector.",
		},
		"rtl_tcp_connector": {
			Detect: func() bool { return d.hasOwrxConnector("rtl_tcp_connector") },
			Description: "rtl_tcp_connector from the owrx_connector project connects to remote rtl_tcp instances. " +
				"Debian and Ubuntu users can install the package owrx-connector.",
		},
		"soapy_connector": {
			Detect: func() bool { return d.hasOwrxConnector("soapy_connector") },
			Description: "soapy_connector from the owrx_connector project interfaces any SoapySDR-supported hardware. " +
				"Debian and Ubuntu users can install the package owrx-connector.",
		},
		"sddc_connector": {
			Detect: func() bool { return d.hasConnector("sddc_connector", sddcMinVersion) },
			Description: "sddc_connector enables devices powered by libsddc, such as the RX666, RX888 and HF103.",
		},
		"hpsdr_connector": {
			Detect: func() bool { return d.runner.Runnable("hpsdrconnector -h") },
			Description: "hpsdrconnector interfaces networked HPSDR devices such as the Hermes Lite 2 and Red Pitaya. " +
				"Debian and Ubuntu users can install the package hpsdrconnector.",
		},
		"runds_connector": {
			Detect: func() bool { return d.hasConnector("runds_connector", rundsMinVersion) },
			Description: "runds_connector interfaces Rohde & Schwarz radios via EB200 or Ammos. " +
				"Debian and Ubuntu users can install the package runds-connector.",
		},

		"soapy_rtl_sdr": {
			Detect: func() bool { return d.hasSoapyDriver("rtlsdr") },
			Description: "The SoapyRTLSDR module can be used as an alternative to rtl_connector. " +
				"Debian and Ubuntu users can install the package soapysdr-module-rtlsdr.",
		},
		"soapy_sdrplay": {
			Detect:      func() bool { return d.hasSoapyDriver("sdrplay") },
			Description: "The SoapySDRPlay3 module interfaces SDRPlay devices (RSP1*, RSP2*, RSPduo).",
		},
		"soapy_airspy": {
			Detect: func() bool { return d.hasSoapyDriver("airspy") },
			Description: "The SoapyAirspy module interfaces Airspy R2 and Airspy Mini devices. " +
				"Debian and Ubuntu users can install the package soapysdr-module-airspy.",
		},
		"soapy_airspyhf": {
			Detect: func() bool { return d.hasSoapyDriver("airspyhf") },
			Description: "The SoapyAirspyHF module interfaces Airspy HF+ and HF Discovery devices. " +
				"Debian and Ubuntu users can install the package soapysdr-module-airspyhf.",
		},
		"soapy_afedri": {
			Detect: func() bool { return d.hasSoapyDriver("afedri") },
			Description: "The SoapyAfedri module interfaces Afedri SDR-Net devices. " +
				"Debian and Ubuntu users can install the package soapysdr-module-afedri.",
		},
		"soapy_lime_sdr": {
			Detect: func() bool { return d.hasSoapyDriver("lime") },
			Description: "LimeSuite installs a Soapy driver for the LimeSDR device series. " +
				"Debian and Ubuntu users can install the package soapysdr-module-lms7.",
		},
		"soapy_pluto_sdr": {
			Detect: func() bool { return d.hasSoapyDriver("plutosdr") },
			Description: "The SoapyPlutoSDR module interfaces PlutoSDR devices. " +
				"Debian and Ubuntu users can install the package soapysdr-module-plutosdr.",
		},
		"soapy_remote": {
			Detect: func() bool { return d.hasSoapyDriver("remote") },
			Description: "SoapyRemote uses remote SDR devices over the network via SoapySDRServer. " +
				"Debian and Ubuntu users can install the package soapysdr-module-remote.",
		},
		"soapy_uhd": {
			Detect: func() bool { return d.hasSoapyDriver("uhd") },
			Description: "The SoapyUHD module interfaces UHD / USRP devices. " +
				"Debian and Ubuntu users can install the package soapysdr-module-uhd.",
		},
		"soapy_radioberry": {
			Detect:      func() bool { return d.hasSoapyDriver("radioberry") },
			Description: "The Radioberry is an SDR hat for the Raspberry Pi with its own SoapySDR module.",
		},
		"soapy_hackrf": {
			Detect: func() bool { return d.hasSoapyDriver("hackrf") },
			Description: "The SoapyHackRF module interfaces HackRF devices. " +
				"Debian and Ubuntu users can install the package soapysdr-module-hackrf.",
		},
		"soapy_fcdpp": {
			Detect:      func() bool { return d.hasSoapyDriver("fcdpp") },
			Description: "The SoapyFCDPP module interfaces the Funcube Dongle Pro+.",
		},
		"soapy_bladerf": {
			Detect: func() bool { return d.hasSoapyDriver("bladerf") },
			Description: "The SoapyBladeRF module interfaces BladeRF devices. " +
				"Debian and Ubuntu users can install the package soapysdr-module-bladerf.",
		},
		"soapy_sddc": {
			Detect: func() bool { return d.hasSoapyDriver("SDDC") },
			Description: "The SoapySDDC module is a CPU-only alternative to sddc_connector for RX666, " +
				"RX888 and HF103 devices.",
		},

		"m17_demod": {
			Detect: func() bool { return d.runner.RunnableWithExit("m17-demod", 0) },
			Description: "m17-demod demodulates M17 digital voice signals. " +
				"Debian and Ubuntu users can install the package m17-demod.",
		},
		"direwolf": {
			Detect: func() bool { return d.runner.Runnable("direwolf --help") },
			Description: "The direwolf software modem decodes packet radio and reports to APRS-IS. " +
				"Debian and Ubuntu users can install the package direwolf.",
		},
		"wsjtx": {
			Detect:      func() bool { return d.hasWSJTX() },
			Description: "The WSJT-X suite (jt9 and wsprd) decodes FT8 and other digimodes.",
		},
		"wsjtx_2_3": {
			Detect:      func() bool { return d.hasWSJTX() && d.hasWSJTXVersion(wsjtx23MinVersion) },
			Description: "Newer digimodes such as FST4 and FST4W require WSJT-X in at least version 2.3.",
		},
		"wsjtx_2_4": {
			Detect:      func() bool { return d.hasWSJTX() && d.hasWSJTXVersion(wsjtx24MinVersion) },
			Description: "WSJT-X version 2.4 introduced the Q65 mode.",
		},
		"msk144decoder": {
			Detect:      func() bool { return d.runner.Runnable("msk144decoder") },
			Description: "msk144decoder decodes the MSK144 digimode.",
		},
		"js8": {
			Detect: func() bool { return d.runner.Runnable("js8") },
			Description: "The js8 binary from JS8Call decodes JS8 transmissions. " +
				"Debian and Ubuntu users can install the package js8call.",
		},
		"alsa": {
			Detect: func() bool { return d.runner.Runnable("arecord --help") },
			Description: "Some SDR receivers identify themselves as a soundcard and are read through ALSA. " +
				"Debian and Ubuntu users can install the package alsa-utils.",
		},
		"rockprog": {
			Detect:      func() bool { return d.runner.Runnable("rockprog") },
			Description: "The rockprog executable sends commands to FiFiSDR devices. It is distributed separately.",
		},
		"freedv_rx": {
			Detect: func() bool { return d.runner.Runnable("freedv_rx") },
			Description: "freedv_rx demodulates FreeDV digital transmissions. It is a supplemental part of the " +
				"codec2 project and usually needs to be built from source.",
		},
		"codec2": {
			Detect:      func() bool { return d.hasLibraryStrict("codec2", codec2MinVersion) },
			Description: "The codec2 library provides the low-bitrate speech codec behind FreeDV.",
		},
		"dream": {
			Detect: func() bool { return d.runner.RunnableWithExit("dream --help", 0) },
			Description: "The dream decoder demodulates DRM broadcasts. " +
				"Debian and Ubuntu users can install the package dream-headless.",
		},
		"codecserver_ambe": {
			Detect: func() bool { return d.hasAmbeCodec() },
			Description: "Codecserver decodes AMBE voice data for digital voice modes. This checks both the " +
				"digiham library and the reachability of the configured codecserver instance.",
		},
		"dump1090": {
			Detect: func() bool { return d.runner.Runnable("dump1090 --version") },
			Description: "The dump1090 decoder receives Mode-S and ADS-B traffic from airplanes. Any fork " +
				"supporting the --ifile and --iformat arguments works; the Flightaware fork is recommended.",
		},
		"rtl_433": {
			Detect: func() bool { return d.runner.Runnable("rtl_433 -h") },
			Description: "rtl_433 decodes various signals in the ISM bands. " +
				"Debian and Ubuntu users can install the package rtl-433.",
		},
		"dumphfdl": {
			Detect:      func() bool { return d.runner.Runnable("dumphfdl --version") },
			Description: "dumphfdl decodes HFDL airplane communications.",
		},
		"dumpvdl2": {
			Detect:      func() bool { return d.runner.Runnable("dumpvdl2 --version") },
			Description: "dumpvdl2 decodes VDL Mode 2 airplane communications.",
		},
		"redsea": {
			Detect:      func() bool { return d.runner.Runnable("redsea --version") },
			Description: "The redsea decoder extracts RDS data from WFM broadcast stations.",
		},
		"csdreti": {
			Detect:      func() bool { return d.hasLibrary("csdr-eti", csdrEtiMinVersion) },
			Description: "The csdr-eti library extracts ETI streams from DAB broadcast signals.",
		},
		"dablin": {
			Detect: func() bool { return d.runner.Runnable("dablin -h") },
			Description: "dablin decodes audio from DAB ETI streams. " +
				"Debian and Ubuntu users can install the package dablin.",
		},
		"mosquitto": {
			Detect: func() bool { return d.hasLibraryInstalled("libmosquitto") },
			Description: "The mosquitto client library passes decoded signal data to an MQTT broker. " +
				"Debian and Ubuntu users can install the package libmosquitto-dev.",
		},
	}
}
