// huntd bridges a treasure pad to an MQTT broker. Pad events publish
// to <root>/event/<name> and command echoes to <root>/echo; messages
// arriving on <root>/cmd/food, <root>/cmd/energy and <root>/cmd/status
// are forwarded to the pad.
package main

import (
	"flag"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/denisbrodbeck/machineid"
	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"

	"github.com/PhoneMk/treasure-hunt/host/client"
	"github.com/PhoneMk/treasure-hunt/host/config"
	"github.com/PhoneMk/treasure-hunt/host/link"
	"github.com/PhoneMk/treasure-hunt/protocol"
)

var (
	configPath = flag.String("config", "", "Path to a YAML config file")
	broker     = flag.String("broker", "", "MQTT broker URL (overrides config)")
	device     = flag.String("device", "", "Serial device path (overrides config)")
	tcpAddr    = flag.String("tcp", "", "Simulator TCP address (overrides config)")
)

type bridge struct {
	pad  *client.Client
	mq   paho.Client
	root string
}

func main() {
	flag.Parse()
	defer glog.Flush()

	cfg, err := loadConfig()
	if err != nil {
		glog.Exitf("config: %v", err)
	}
	if cfg.MQTT.Broker == "" {
		glog.Exit("no MQTT broker configured; set mqtt.broker or -broker")
	}

	b := &bridge{root: cfg.MQTT.TopicRoot}

	opts, err := clientOptions(cfg, b)
	if err != nil {
		glog.Exitf("broker: %v", err)
	}
	b.mq = paho.NewClient(opts)

	pad, err := openPad(cfg, b.publishEvent, b.publishEcho)
	if err != nil {
		glog.Exitf("pad link: %v", err)
	}
	b.pad = pad
	defer pad.Close()

	token := b.mq.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		glog.Exitf("broker connect: %v", err)
	}
	defer b.mq.Disconnect(250)

	pushStartState(pad, cfg)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case s := <-sig:
		glog.Infof("shutting down: %v", s)
	case <-pad.Done():
		glog.Error("pad link closed")
	}
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

	if *broker != "" {
		cfg.MQTT.Broker = *broker
	}
	if *tcpAddr != "" {
		cfg.Link.TCP = *tcpAddr
	} else if *device != "" {
		cfg.Link.Device = *device
		cfg.Link.TCP = ""
	}

	return cfg, nil
}

// clientOptions builds paho options from the broker URL, optional
// user:pass in the URL included.
func clientOptions(cfg *config.Config, b *bridge) (*paho.ClientOptions, error) {
	u, err := url.Parse(cfg.MQTT.Broker)
	if err != nil {
		return nil, err
	}
	scheme := u.Scheme
	if scheme == "" || scheme == "mqtt" {
		scheme = "tcp"
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(scheme + "://" + u.Host).
		SetAutoReconnect(true).
		SetCleanSession(true).
		SetClientID(clientID(cfg)).
		SetOnConnectHandler(b.onConnect).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			glog.Warningf("broker connection lost: %v", err)
		})

	if u.User != nil {
		opts.SetUsername(u.User.Username())
		if pwd, ok := u.User.Password(); ok {
			opts.SetPassword(pwd)
		}
	}

	return opts, nil
}

func clientID(cfg *config.Config) string {
	if cfg.MQTT.ClientID != "" {
		return cfg.MQTT.ClientID
	}
	id, err := machineid.ID()
	if err != nil {
		glog.Warningf("machine id unavailable: %v", err)
		return "huntd"
	}
	return "huntd-" + id
}

func openPad(cfg *config.Config, onEvent client.EventFunc, onLine client.LineFunc) (*client.Client, error) {
	if cfg.Link.TCP != "" {
		glog.Infof("connecting to simulator at %s", cfg.Link.TCP)
		port, err := link.DialTCP(cfg.Link.TCP)
		if err != nil {
			return nil, err
		}
		return client.New(port, onEvent, onLine), nil
	}

	glog.Infof("connecting to pad on %s", cfg.Link.Device)
	lcfg := link.DefaultConfig(cfg.Link.Device)
	lcfg.Baud = cfg.Link.Baud
	return client.ConnectWithConfig(lcfg, onEvent, onLine)
}

// pushStartState paints the configured game state onto the pad.
func pushStartState(pad *client.Client, cfg *config.Config) {
	glog.Infof("pushing start state: food=%d energy=%d status=%q",
		cfg.Game.StartFood, cfg.Game.StartEnergy, cfg.Game.StartStatus)

	if err := pad.SendFood(cfg.Game.StartFood); err != nil {
		glog.Warningf("start food: %v", err)
	}
	if err := pad.SendEnergy(cfg.Game.StartEnergy); err != nil {
		glog.Warningf("start energy: %v", err)
	}
	if err := pad.SendStatus(cfg.Game.StartStatus); err != nil {
		glog.Warningf("start status: %v", err)
	}
}

// onConnect runs on every (re)connect so the subscription survives
// broker restarts.
func (b *bridge) onConnect(paho.Client) {
	glog.Info("connected to broker")

	topic := b.root + "/cmd/+"
	if token := b.mq.Subscribe(topic, 0, b.handleCommand); token.Wait() && token.Error() != nil {
		glog.Errorf("subscribe %q: %v", topic, token.Error())
	}
}

func (b *bridge) handleCommand(_ paho.Client, msg paho.Message) {
	topic := msg.Topic()
	leaf := topic[strings.LastIndexByte(topic, '/')+1:]
	payload := string(msg.Payload())

	glog.V(1).Infof("RCV %q %q", topic, payload)

	switch leaf {
	case "food":
		n, err := strconv.Atoi(strings.TrimSpace(payload))
		if err != nil {
			glog.Warningf("food payload %q: %v", payload, err)
			return
		}
		if err := b.pad.SendFood(n); err != nil {
			glog.Errorf("send food: %v", err)
		}
	case "energy":
		n, err := strconv.Atoi(strings.TrimSpace(payload))
		if err != nil {
			glog.Warningf("energy payload %q: %v", payload, err)
			return
		}
		if err := b.pad.SendEnergy(n); err != nil {
			glog.Errorf("send energy: %v", err)
		}
	case "status":
		if err := b.pad.SendStatus(payload); err != nil {
			glog.Errorf("send status: %v", err)
		}
	default:
		glog.Warningf("unknown command topic %q", topic)
	}
}

func (b *bridge) publishEvent(ev byte) {
	if !b.mq.IsConnected() {
		return
	}
	name := protocol.EventName(ev)
	glog.V(1).Infof("event %s", name)
	b.mq.Publish(b.root+"/event/"+name, 0, false, name)
}

func (b *bridge) publishEcho(line string) {
	if !b.mq.IsConnected() {
		return
	}
	b.mq.Publish(b.root+"/echo", 0, false, line)
}
