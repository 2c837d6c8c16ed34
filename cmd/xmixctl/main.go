// Command xmixctl is a thin command-line front end for the xmix client.
//
// The device is identified by environment, never by flag, so scripts and
// calling agents share one configuration surface:
//
//	MIXER_HOST  device address (default 192.168.1.1)
//	MIXER_PORT  device port (default 10023; X-Air mixers listen on 10024)
//
// Usage:
//
//	xmixctl info
//	xmixctl fader <channel> <level 0..1>
//	xmixctl mute <channel> on|off
//	xmixctl pan <channel> <-1..1>
//	xmixctl scene <number>
//	xmixctl monitor
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/xmix"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: xmixctl info|fader|mute|pan|scene|monitor [args]")
		os.Exit(2)
	}

	options := xmix.NewOptions()
	if host := os.Getenv("MIXER_HOST"); host != "" {
		options.Host = host
	}
	if port := os.Getenv("MIXER_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			logrus.WithField("MIXER_PORT", port).Fatal("Invalid port")
		}
		options.Port = p
	}

	mixer, err := xmix.New(options)
	if err != nil {
		logrus.WithError(err).Fatal("Cannot open mixer endpoint")
	}
	defer mixer.Close()

	if err := mixer.Connect(); err != nil {
		logrus.WithError(err).Fatal("Cannot establish mixer session")
	}

	if err := run(mixer, os.Args[1], os.Args[2:]); err != nil {
		logrus.WithError(err).Fatal("Command failed")
	}
}

func run(mixer *xmix.Mixer, command string, args []string) error {
	switch command {
	case "info":
		info := mixer.DeviceInfo()
		fmt.Printf("family:   %s\n", mixer.Family())
		fmt.Printf("model:    %s\n", info.Model)
		fmt.Printf("name:     %s\n", info.Name)
		fmt.Printf("firmware: %s\n", info.Firmware)
		return nil

	case "fader":
		ch, level, err := intFloatArgs(args)
		if err != nil {
			return err
		}
		return mixer.SetChannelFader(ch, level)

	case "mute":
		if len(args) != 2 {
			return fmt.Errorf("usage: mute <channel> on|off")
		}
		ch, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("channel: %w", err)
		}
		return mixer.SetChannelMute(ch, args[1] == "on")

	case "pan":
		ch, pan, err := intFloatArgs(args)
		if err != nil {
			return err
		}
		return mixer.SetChannelPan(ch, pan)

	case "scene":
		if len(args) != 1 {
			return fmt.Errorf("usage: scene <number>")
		}
		scene, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("scene: %w", err)
		}
		return mixer.RecallScene(scene)

	case "monitor":
		// Hold the session open on its keepalive until interrupted.
		logrus.WithField("family", mixer.Family()).Info("Session established, monitoring")
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt)
		<-stop
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func intFloatArgs(args []string) (int, float64, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected <index> <value>")
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("index: %w", err)
	}
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("value: %w", err)
	}
	return idx, value, nil
}
