// Package mqttbridge exposes a chain over MQTT. It subscribes to
//
//	<prefix>/triplet/<tix>/set  {"r":..,"g":..,"b":..} in 0..32767
//	<prefix>/dim/set            plain integer 0..1024
//	<prefix>/build/set          any payload, triggers a rebuild
//
// and publishes a retained topology summary on <prefix>/topo after every
// successful build. The chain itself is single threaded; the bridge
// serializes all handler access to it.
package mqttbridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"ledchain-go/config"
	"ledchain-go/errcode"
	"ledchain-go/logger"
	"ledchain-go/topo"
)

// Bridge couples one chain to one broker connection.
type Bridge struct {
	log    *logger.Log
	cfg    config.MQTTConf
	client mqtt.Client

	mu sync.Mutex // guards t; paho runs handlers on its own goroutines
	t  *topo.Topo
}

// ColorMsg is the payload of a triplet set message.
type ColorMsg struct {
	R uint16 `json:"r"`
	G uint16 `json:"g"`
	B uint16 `json:"b"`
}

// New returns an unconnected bridge for chain t.
func New(log *logger.Log, cfg config.MQTTConf, t *topo.Topo) *Bridge {
	return &Bridge{log: log, cfg: cfg, t: t}
}

// Start connects to the broker and subscribes the command topics. The
// context only bounds the connection attempt; once connected the paho
// client reconnects on its own.
func (b *Bridge) Start(ctx context.Context) error {
	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%s", b.cfg.Host, b.cfg.Port)).
		SetUsername(b.cfg.User).
		SetPassword(b.cfg.Password).
		SetClientID(b.cfg.ClientID).
		SetOnConnectHandler(b.onConnect).
		SetConnectionLostHandler(b.onConnectLost).
		SetOrderMatters(false).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetMaxReconnectInterval(5 * time.Second).
		SetKeepAlive(30 * time.Second)

	b.client = mqtt.NewClient(opts)

	token := b.client.Connect()
	select {
	case <-token.Done():
		if token.Error() != nil {
			return token.Error()
		}
	case <-ctx.Done():
		return errors.New("context canceled")
	}
	b.log.With(logger.Fields{"module": "mqtt"}).Infof("connected: %v", b.client.IsConnected())
	return nil
}

// Stop disconnects from the broker.
func (b *Bridge) Stop() {
	if b.client != nil && b.client.IsConnected() {
		b.client.Disconnect(500)
	}
}

func (b *Bridge) onConnect(_ mqtt.Client) {
	log := b.log.With(logger.Fields{"module": "mqtt"})
	log.Info("client connected, subscribing")
	subs := map[string]mqtt.MessageHandler{
		b.cfg.Prefix + "/triplet/+/set": b.onTriplet,
		b.cfg.Prefix + "/dim/set":       b.onDim,
		b.cfg.Prefix + "/build/set":     b.onBuild,
	}
	for topic, handler := range subs {
		if token := b.client.Subscribe(topic, b.cfg.Qos, handler); token.Wait() && token.Error() != nil {
			log.Errorf("subscribe %s: %v", topic, token.Error())
		}
	}
}

func (b *Bridge) onConnectLost(_ mqtt.Client, err error) {
	b.log.With(logger.Fields{"module": "mqtt"}).Errorf("connection lost: %v", err)
}

func (b *Bridge) onTriplet(_ mqtt.Client, msg mqtt.Message) {
	if err := b.handleTriplet(msg.Topic(), msg.Payload()); err != nil {
		b.log.With(logger.Fields{"module": "mqtt"}).Errorf("%s: %v", msg.Topic(), err)
	}
}

func (b *Bridge) onDim(_ mqtt.Client, msg mqtt.Message) {
	if err := b.handleDim(msg.Payload()); err != nil {
		b.log.With(logger.Fields{"module": "mqtt"}).Errorf("%s: %v", msg.Topic(), err)
	}
}

func (b *Bridge) onBuild(_ mqtt.Client, msg mqtt.Message) {
	if err := b.handleBuild(); err != nil {
		b.log.With(logger.Fields{"module": "mqtt"}).Errorf("build: %v", err)
		return
	}
	b.publishTopo()
}

// tripletFromTopic extracts tix from "<prefix>/triplet/<tix>/set".
func tripletFromTopic(topic string) (uint16, error) {
	parts := strings.Split(topic, "/")
	if len(parts) < 4 || parts[len(parts)-3] != "triplet" || parts[len(parts)-1] != "set" {
		return 0, errcode.InvalidParams
	}
	tix, err := strconv.ParseUint(parts[len(parts)-2], 10, 16)
	if err != nil {
		return 0, errcode.InvalidParams
	}
	return uint16(tix), nil
}

func (b *Bridge) handleTriplet(topic string, payload []byte) error {
	tix, err := tripletFromTopic(topic)
	if err != nil {
		return err
	}
	var msg ColorMsg
	if err := json.Unmarshal(payload, &msg); err != nil {
		return err
	}
	if msg.R > topo.BrightnessMax || msg.G > topo.BrightnessMax || msg.B > topo.BrightnessMax {
		return errcode.InvalidParams
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if tix >= b.t.NumTriplets() {
		return errcode.InvalidParams
	}
	return b.t.SetTriplet(tix, topo.RGB{R: msg.R, G: msg.G, B: msg.B})
}

func (b *Bridge) handleDim(payload []byte) error {
	level, err := strconv.Atoi(strings.TrimSpace(string(payload)))
	if err != nil {
		return errcode.InvalidParams
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.t.SetDim(level)
	return nil
}

func (b *Bridge) handleBuild() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.t.Build()
}

// Build runs a build pass and publishes the retained topology summary.
func (b *Bridge) Build() error {
	if err := b.handleBuild(); err != nil {
		return err
	}
	b.publishTopo()
	return nil
}

func (b *Bridge) publishTopo() {
	b.mu.Lock()
	var buf bytes.Buffer
	b.t.DumpSummary(&buf)
	b.mu.Unlock()

	token := b.client.Publish(b.cfg.Prefix+"/topo", b.cfg.Qos, true, buf.Bytes())
	if token.Wait() && token.Error() != nil {
		b.log.With(logger.Fields{"module": "mqtt"}).Errorf("publish topo: %v", token.Error())
	}
}
