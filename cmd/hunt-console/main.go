package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/PhoneMk/treasure-hunt/host/client"
	"github.com/PhoneMk/treasure-hunt/host/config"
	"github.com/PhoneMk/treasure-hunt/host/link"
	"github.com/PhoneMk/treasure-hunt/protocol"
)

const clientKey = "$client"

var (
	configPath = flag.String("config", "", "Path to a YAML config file")
	device     = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (overrides config)")
	tcpAddr    = flag.String("tcp", "", "Simulator TCP address (overrides config)")
)

var commands = []*ishell.Cmd{
	&foodCmd,
	&energyCmd,
	&statusCmd,
	&rawCmd,
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	shell := ishell.New()
	shell.Println("Treasure Hunt Console", protocol.Version)

	pad, err := connect(cfg, shell)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pad.Close()

	shell.Set(clientKey, pad)
	shell.SetPrompt("pad > ")
	for _, cmd := range commands {
		shell.AddCmd(cmd)
	}

	// With arguments, run one command and exit instead of going
	// interactive.
	if args := flag.Args(); len(args) > 0 {
		if err := shell.Process(args...); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	shell.Run()
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	// Flags beat the file; an explicit -device also beats a configured
	// simulator address.
	if *tcpAddr != "" {
		cfg.Link.TCP = *tcpAddr
	} else if *device != "" {
		cfg.Link.Device = *device
		cfg.Link.TCP = ""
	}
	if *baud != 0 {
		cfg.Link.Baud = *baud
	}

	return cfg, nil
}

func connect(cfg *config.Config, shell *ishell.Shell) (*client.Client, error) {
	onEvent := func(ev byte) {
		shell.Println("<- event:", protocol.EventName(ev))
	}
	onLine := func(line string) {
		shell.Println("<- " + line)
	}

	if cfg.Link.TCP != "" {
		shell.Printf("Connecting to simulator at %s ...\n", cfg.Link.TCP)
		port, err := link.DialTCP(cfg.Link.TCP)
		if err != nil {
			return nil, err
		}
		return client.New(port, onEvent, onLine), nil
	}

	shell.Printf("Connecting to pad on %s ...\n", cfg.Link.Device)
	lcfg := link.DefaultConfig(cfg.Link.Device)
	lcfg.Baud = cfg.Link.Baud
	return client.ConnectWithConfig(lcfg, onEvent, onLine)
}

func clientFrom(c *ishell.Context) *client.Client {
	return c.Get(clientKey).(*client.Client)
}

var (
	// foodCmd sets the pad's food count.
	foodCmd = ishell.Cmd{
		Name: "food",
		Help: "N - set the food count",
		Func: func(c *ishell.Context) {
			n, ok := intArg(c, "food")
			if !ok {
				return
			}
			if err := clientFrom(c).SendFood(n); err != nil {
				c.Err(err)
			}
		},
	}

	// energyCmd sets the pad's energy level.
	energyCmd = ishell.Cmd{
		Name: "energy",
		Help: "N - set the energy level",
		Func: func(c *ishell.Context) {
			n, ok := intArg(c, "energy")
			if !ok {
				return
			}
			if err := clientFrom(c).SendEnergy(n); err != nil {
				c.Err(err)
			}
		},
	}

	// statusCmd sets the pad's status line.
	statusCmd = ishell.Cmd{
		Name: "status",
		Help: "TEXT - set the status line",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(fmt.Errorf("usage: status TEXT"))
				return
			}
			text := strings.Join(c.Args, " ")
			if err := clientFrom(c).SendStatus(text); err != nil {
				c.Err(err)
			}
		},
	}

	// rawCmd sends an arbitrary line, echoed back by the pad whether
	// it recognizes the tag or not.
	rawCmd = ishell.Cmd{
		Name: "raw",
		Help: "LINE - send an arbitrary line",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(fmt.Errorf("usage: raw LINE"))
				return
			}
			if err := clientFrom(c).SendRaw(strings.Join(c.Args, " ")); err != nil {
				c.Err(err)
			}
		},
	}
)

func intArg(c *ishell.Context, name string) (int, bool) {
	if len(c.Args) != 1 {
		c.Err(fmt.Errorf("usage: %s N", name))
		return 0, false
	}
	n, err := strconv.Atoi(c.Args[0])
	if err != nil {
		c.Err(fmt.Errorf("%s: %q is not a number", name, c.Args[0]))
		return 0, false
	}
	return n, true
}
