package sdrfeatures

import (
	"net"
	"strings"
	"time"
)

// DefaultCodecServer is where a locally installed codecserver listens when
// no address is configured.
const DefaultCodecServer = "localhost:1073"

const codecServerDialTimeout = 3 * time.Second

// hasAmbeCodec reports whether AMBE voice decoding is usable: the digiham
// library must be present and the configured codecserver instance must
// answer a connection round trip. Connection errors mean unavailable;
// anything unexpected is logged and also treated as unavailable.
func (d *Detector) hasAmbeCodec() bool {
	if !d.hasLibrary("digiham", digihamMinVersion) {
		return false
	}
	return d.codecServerReachable()
}

// codecServerReachable completes one connection round trip against the
// configured codec server. The codec negotiation itself happens when a
// channel is opened; for availability purposes a completed dial is the
// strongest check that doesn't decode audio.
func (d *Detector) codecServerReachable() bool {
	addr := d.codecServer
	if addr == "" {
		addr = DefaultCodecServer
	}
	network := "tcp"
	if strings.ContainsRune(addr, '/') {
		network = "unix"
	}

	conn, err := net.DialTimeout(network, addr, codecServerDialTimeout)
	if err != nil {
		if _, ok := err.(net.Error); !ok {
			d.log.Error("codecserver error while checking for AMBE support",
				"address", addr, "err", err)
		}
		return false
	}
	defer conn.Close()
	return true
}
