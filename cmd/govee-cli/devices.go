package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"

	goveev1 "github.com/joshp123/govee-collector/proto/gen/govee/v1"
)

func devicesCmd(ctx context.Context, conn *grpc.ClientConn, args []string) {
	flags := flag.NewFlagSet("devices", flag.ExitOnError)
	jsonOutput := flags.Bool("json", false, "print JSON")
	_ = flags.Parse(args)
	out := outputMode{json: *jsonOutput}

	client := goveev1.NewDeviceDataProviderClient(conn)
	ids, err := resolveDeviceIDs(ctx, client, flags.Args())
	if err != nil {
		fatal("devices", err)
	}

	resp, err := client.GetDeviceData(ctx, &goveev1.GetDeviceDataRequest{UniqueIds: ids})
	if err != nil {
		fatal("get device data", err)
	}
	if out.json {
		out.printProto(resp)
		return
	}
	out.table(deviceRows(resp.Devices))
}

func watchCmd(conn *grpc.ClientConn, args []string) {
	flags := flag.NewFlagSet("watch", flag.ExitOnError)
	jsonOutput := flags.Bool("json", false, "print one JSON object per update")
	interval := flags.Uint("interval", 0, "refresh interval in seconds (server default when 0)")
	_ = flags.Parse(args)
	out := outputMode{json: *jsonOutput}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := goveev1.NewDeviceDataProviderClient(conn)
	resolveCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	ids, err := resolveDeviceIDs(resolveCtx, client, flags.Args())
	cancel()
	if err != nil {
		fatal("watch", err)
	}

	req := &goveev1.StreamDeviceDataRequest{UniqueIds: ids}
	if *interval > 0 {
		req.RefreshIntervalInSecs = proto.Uint32(uint32(*interval))
	}
	stream, err := client.StreamDeviceData(ctx, req)
	if err != nil {
		fatal("stream device data", err)
	}

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return
		}
		if err != nil {
			fatal("receive", err)
		}
		if out.json {
			out.printProtoLine(resp)
			continue
		}
		fmt.Printf("# %s\n", time.Now().Format(time.RFC3339))
		out.table(deviceRows(resp.Devices))
		fmt.Println()
	}
}

// resolveDeviceIDs maps user input (broadcast or friendly names) to unique
// ids. No input means every device.
func resolveDeviceIDs(ctx context.Context, client goveev1.DeviceDataProviderClient, inputs []string) ([]string, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	all, err := client.GetDeviceData(ctx, &goveev1.GetDeviceDataRequest{})
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	options := deviceOptions(all.Devices)

	ids := make([]string, 0, len(inputs))
	for _, input := range inputs {
		id, err := resolveNamedID("device", input, options)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func deviceRows(devices []*goveev1.DeviceData) [][]string {
	rows := [][]string{{"DEVICE", "NAME", "TEMP_C", "TEMP_F", "HUMIDITY", "BATTERY", "UPDATED"}}
	for _, device := range devices {
		updated := "-"
		if device.LastUpdated != nil {
			updated = device.LastUpdated.AsTime().Local().Format(time.DateTime)
		}
		rows = append(rows, []string{
			device.UniqueId,
			device.FriendlyName,
			formatFloat(device.TemperatureInC, 1),
			formatFloat(device.TemperatureInF, 2),
			formatFloat(device.Humidity, 1),
			formatFloat(device.Battery, 0),
			updated,
		})
	}
	return rows
}

func formatFloat(value *float32, precision int) string {
	if value == nil {
		return "-"
	}
	return strconv.FormatFloat(float64(*value), 'f', precision, 32)
}
