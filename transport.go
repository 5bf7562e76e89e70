package hap

import (
	"encoding/json"
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/openhearth/hap/accessory"
	"github.com/openhearth/hap/config"
	"github.com/openhearth/hap/db"
	"github.com/openhearth/hap/event"
	"github.com/openhearth/hap/log"
	"github.com/openhearth/hap/mdns"
	"github.com/openhearth/hap/netio"
	"github.com/openhearth/hap/netio/pair"
	"github.com/openhearth/hap/server"
	"github.com/openhearth/hap/subscription"
	"github.com/openhearth/hap/util"
)

// Transport owns the config, storage, database, accessory list, event
// emitter, and mDNS responder for one bridge process.
type Transport struct {
	config  config.Config
	storage util.Storage

	database      *db.Database
	accessories   *db.AccessoryList
	subscriptions *subscription.Registry
	emitter       *event.Emitter
	context       *netio.Context
	longTerm      *pair.LongTermKey

	server    server.Server
	responder *mdns.Responder
	advert    *mdns.AdvertisementController
}

// New creates a transport for the given accessories; a is the bridge
// (always AID 1) and as are the accessories it bridges. Device and
// pairing keys are stored inside a directory named after
// cfg.StoragePath, defaulting to cfg.Name.
//
// Changing the accessory name, or letting multiple transports share one
// storage directory, leads to unexpected behavior.
func New(cfg config.Config, a *accessory.Accessory, as ...*accessory.Accessory) (*Transport, error) {
	if cfg.Name == "" {
		return nil, errors.New("hap: config.Name must not be empty")
	}
	if cfg.StoragePath == "" {
		cfg.StoragePath = cfg.Name
	}
	if cfg.Pin == "" {
		cfg.Pin = "00102003"
	}
	if cfg.Port != "" && !strings.HasPrefix(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}
	if cfg.Model == "" {
		cfg.Model = a.Info.Model.Value().(string)
	}
	if cfg.Category == 0 {
		cfg.Category = a.Category()
	}
	if cfg.ConfigurationNumber == 0 {
		cfg.ConfigurationNumber = 1
	}

	storage, err := util.NewFileStorage(cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	database := db.NewDatabaseWithStorage(storage)

	// The device id appears as the "id" TXT record in mDNS and must be
	// unique and stay the same over time.
	identity, err := database.DeviceIdentity()
	if err != nil {
		return nil, err
	}
	if identity == nil {
		longTerm, err := pair.NewLongTermKey()
		if err != nil {
			return nil, err
		}
		id := cfg.DeviceID
		if id == "" {
			id = util.MAC48Address(util.RandomHexString())
		}
		if err := database.SaveDeviceIdentity(id, longTerm); err != nil {
			return nil, err
		}
		identity = &db.DeviceIdentity{ID: id, LongTerm: longTerm}
	}
	cfg.DeviceID = identity.ID
	longTerm := identity.LongTerm

	if count, err := database.CountPairings(); err == nil && count > 0 {
		cfg.StatusFlag = config.StatusFlagZero
	}

	emitter := event.NewEmitter()
	accessories := db.NewAccessoryList(emitter)
	subs := subscription.NewRegistry()
	context := netio.NewContext()

	// A closed connection takes its subscriptions with it.
	context.OnSessionClose(subs.DropSession)

	t := &Transport{
		config:        cfg,
		storage:       storage,
		database:      database,
		accessories:   accessories,
		subscriptions: subs,
		emitter:       emitter,
		context:       context,
		longTerm:      longTerm,
	}

	if err := t.addAccessory(a); err != nil {
		return nil, err
	}
	for _, extra := range as {
		if err := t.addAccessory(extra); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func (t *Transport) addAccessory(a *accessory.Accessory) error {
	return t.accessories.Add(a)
}

// Start creates the HTTP server, publishes the mDNS service on the
// server's actual port, registers the advertisement controller and the
// characteristic-change notifier on the emitter, and serves until
// Stop is called.
func (t *Transport) Start() error {
	s, err := server.NewServer(server.Config{
		Port:          t.config.Port,
		Context:       t.context,
		Database:      t.database,
		AccessoryList: t.accessories,
		Subscriptions: t.subscriptions,
		LongTermKey:   t.longTerm,
		Pin:           t.config.Pin,
		Emitter:       t.emitter,
	})
	if err != nil {
		return err
	}
	t.server = s

	ip, err := firstLocalIPv4()
	if err != nil {
		return err
	}

	port, err := strconv.Atoi(s.Port())
	if err != nil {
		return err
	}

	responder, err := mdns.NewResponder(t.config.Name, ip, port)
	if err != nil {
		return err
	}
	t.responder = responder

	advert := mdns.NewAdvertisementController(&t.config, responder, t.database)
	t.advert = advert
	t.emitter.AddListener(advert.Listen)

	t.emitter.AddListener(t.notifyOnCharacteristicChange)

	if err := responder.Start(mdns.TXTRecords(&t.config)); err != nil {
		log.Errorf("hap: mDNS responder failed to start: %v", err)
	}

	log.Printf("[INFO] %s listening on port %s", t.config.Name, s.Port())

	return s.ListenAndServe()
}

// Stop stops the HTTP server and unpublishes the mDNS service.
func (t *Transport) Stop() {
	if t.responder != nil {
		t.responder.Stop()
	}
	if t.server != nil {
		t.server.Stop()
	}
}

// notifyOnCharacteristicChange delivers CharacteristicValueChanged
// events to every subscribed session's connection. Sessions that are
// not subscribed to the changed (AID, IID) receive nothing.
func (t *Transport) notifyOnCharacteristicChange(ev event.Event) {
	changed, ok := ev.(event.CharacteristicValueChanged)
	if !ok {
		return
	}

	sessions := t.subscriptions.SubscribersOf(changed.AID, changed.IID)
	if len(sessions) == 0 {
		return
	}

	body, err := encodeChangedValue(changed)
	if err != nil {
		log.Errorf("hap: failed to encode characteristic change: %v", err)
		return
	}
	frame := netio.EventFrame(body)

	for _, sessionID := range sessions {
		conn := t.context.ConnectionForSession(sessionID)
		if conn == nil {
			continue
		}
		if _, err := conn.Write(frame); err != nil {
			log.Errorf("hap: failed to deliver notification to %s: %v", sessionID, err)
		}
	}
}

// firstLocalIPv4 returns the first non-loopback IPv4 address of the
// local machine. net.LookupIP(hostname) returns nothing on some boards,
// so interfaces are walked directly.
func firstLocalIPv4() (net.IP, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil, err
	}

	for _, addr := range addrs {
		var ip net.IP
		switch v := addr.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}
		if ip == nil || ip.IsLoopback() {
			continue
		}
		if ip4 := ip.To4(); ip4 != nil {
			return ip4, nil
		}
	}

	return nil, errors.New("hap: couldn't determine a local IP address")
}

func encodeChangedValue(ev event.CharacteristicValueChanged) ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"characteristics": []map[string]interface{}{
			{"aid": ev.AID, "iid": ev.IID, "value": ev.Value},
		},
	})
}
