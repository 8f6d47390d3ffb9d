package server

import (
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"

	"github.com/joshp123/govee-collector/internal/service"
	goveev1 "github.com/joshp123/govee-collector/proto/gen/govee/v1"
)

var jsonOptions = protojson.MarshalOptions{UseProtoNames: true}

// DevicesHandler serves GetDeviceData as JSON. Repeat ?id= to filter.
func DevicesHandler(resolver *service.Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ids := resolver.ResolveIDs(r.URL.Query()["id"])
		payload, err := jsonOptions.Marshal(&goveev1.GetDeviceDataResponse{Devices: resolver.Snapshot(ids)})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
	})
}
