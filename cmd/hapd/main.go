// Command hapd runs a demo HAP bridge exposing a lightbulb and an
// outlet accessory.
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/openhearth/hap/accessory"
	"github.com/openhearth/hap/config"
	"github.com/openhearth/hap/log"

	hap "github.com/openhearth/hap"
)

var (
	bridgeName    string
	bridgePin     string
	bridgePort    string
	bridgeStorage string
)

var rootCmd = &cobra.Command{
	Use:   "hapd",
	Short: "HomeKit accessory bridge daemon",
	Long: `hapd runs a HomeKit Accessory Protocol bridge exposing a demo
lightbulb and outlet accessory over the local network.

It advertises itself via mDNS under _hap._tcp, accepts HAP HTTP
requests on a TCP port, and persists pairing state under --storage.`,
	RunE: runBridge,
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.Flags().StringVar(&bridgeName, "name", "openhearth-bridge", "bridge display name, advertised via mDNS")
	rootCmd.Flags().StringVar(&bridgePin, "pin", "00102003", "8-digit HAP setup pin")
	rootCmd.Flags().StringVar(&bridgePort, "port", "", "TCP port to listen on (default: any free port)")
	rootCmd.Flags().StringVar(&bridgeStorage, "storage", "", "directory for pairing/device keys (default: --name)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			return
		}
		fmt.Fprintf(os.Stderr, "hapd: %v\n", err)
		os.Exit(1)
	}
}

func runBridge(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg := config.Default(bridgeName)
	cfg.Pin = bridgePin
	cfg.Port = bridgePort
	cfg.StoragePath = bridgeStorage

	bridgeAccessory := accessory.NewBridge(bridgeName)

	lightbulb, _ := accessory.NewLightbulb("Lamp", "000-000-101")
	outlet, _ := accessory.NewOutlet("Outlet", "000-000-102")

	transport, err := hap.New(cfg, bridgeAccessory, lightbulb, outlet)
	if err != nil {
		return fmt.Errorf("hapd: %w", err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		log.Printf("[INFO] shutting down")
		transport.Stop()
	}()

	return transport.Start()
}
