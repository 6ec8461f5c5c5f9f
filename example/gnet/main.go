// FILE: example/gnet/main.go
package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/lixenwraith/syslog"
	"github.com/lixenwraith/syslog/compat"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
	log *compat.GnetAdapter
}

func (es *echoServer) OnBoot(eng gnet.Engine) gnet.Action {
	es.log.Infof("echo server ready")
	return gnet.None
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	es.log.Debugf("echo %d bytes to %s", len(buf), c.RemoteAddr())
	c.Write(buf)
	return gnet.None
}

func main() {
	// Descriptor sink on stdout, gnet messages under the daemon facility
	d, err := syslog.NewBuilder().
		SinkString("descriptor").
		EnableTimestamp(true).
		MaskUpToString("debug").
		Build()
	if err != nil {
		panic(err)
	}

	gnetAdapter, err := compat.NewBuilder().
		WithDispatcher(d).
		BuildGnet(compat.WithGnetFacility(syslog.FacilityDaemon))
	if err != nil {
		panic(err)
	}

	// Configure gnet server with the logger
	err = gnet.Run(
		&echoServer{log: gnetAdapter},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
