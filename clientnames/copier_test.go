package clientnames

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"

	"github.com/twitter/copyclientnames/clientnames/mock_clientnames"
	"github.com/twitter/copyclientnames/common/stats"
	"github.com/twitter/copyclientnames/dashboard"
)

const org = "549236"

var span = 31 * 24 * time.Hour

func TestCopierRunScenario(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	api := mock_clientnames.NewMockAPI(mockCtrl)
	ctx := context.Background()

	api.EXPECT().ListNetworks(ctx, org).Return([]dashboard.Network{
		network("N_0"), network("N_1", srcTag), network("N_2", dstTag),
	}, nil)
	api.EXPECT().ListClients(ctx, "N_1", span, 1000).Return([]dashboard.NetworkClient{
		client("aa:bb", "Alice-Laptop"),
	}, nil)
	api.EXPECT().ListClients(ctx, "N_2", span, 1000).Return([]dashboard.NetworkClient{
		client("aa:bb", ""), client("cc:dd", "Unknown"),
	}, nil)
	api.EXPECT().ProvisionClients(ctx, "N_2",
		[]dashboard.ProvisionClient{{MAC: "aa:bb", Name: "Alice-Laptop"}}, "Normal").
		Return(&dashboard.ProvisionResponse{}, nil).Times(1)

	stat := stats.DefaultStatsReceiver()
	res, err := NewCopier(api, DefaultCopyConfig(), testLog(), stat).Run(ctx, org)
	if err != nil {
		t.Fatalf("Unexpected error from run: %v", err)
	}
	if res.SourceClients != 1 || res.DestinationClients != 2 {
		t.Errorf("Unexpected client counts %+v", res)
	}
	want := []dashboard.ProvisionClient{{MAC: "aa:bb", Name: "Alice-Laptop"}}
	if !reflect.DeepEqual(res.Requests, want) {
		t.Errorf("Expected requests %v, got %v", want, res.Requests)
	}
	if c := stat.Counter("copy", stats.CopyProvisionedCounter).Count(); c != 1 {
		t.Errorf("Expected 1 provisioned, got %d", c)
	}
	if c := stat.Counter("copy", stats.CopyUnmatchedCounter).Count(); c != 1 {
		t.Errorf("Expected 1 unmatched, got %d", c)
	}
}

func TestCopierOneCallPerMatch(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	api := mock_clientnames.NewMockAPI(mockCtrl)

	api.EXPECT().ListNetworks(gomock.Any(), org).Return([]dashboard.Network{network("S", srcTag), network("D", dstTag)}, nil)
	api.EXPECT().ListClients(gomock.Any(), "S", span, 1000).Return([]dashboard.NetworkClient{
		client("01", "one"), client("02", "two"), client("01", "dup"),
	}, nil)
	api.EXPECT().ListClients(gomock.Any(), "D", span, 1000).Return([]dashboard.NetworkClient{
		client("02", ""), client("01", ""), client("03", ""),
	}, nil)
	gomock.InOrder(
		api.EXPECT().ProvisionClients(gomock.Any(), "D", []dashboard.ProvisionClient{{MAC: "02", Name: "two"}}, "Normal").Return(nil, nil),
		api.EXPECT().ProvisionClients(gomock.Any(), "D", []dashboard.ProvisionClient{{MAC: "01", Name: "one"}}, "Normal").Return(nil, nil),
	)

	if _, err := NewCopier(api, DefaultCopyConfig(), testLog(), nil).Run(context.Background(), org); err != nil {
		t.Fatalf("Unexpected error from run: %v", err)
	}
}

func TestCopierNoNetworksTagged(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	api := mock_clientnames.NewMockAPI(mockCtrl)

	api.EXPECT().ListNetworks(gomock.Any(), org).Return([]dashboard.Network{network("N_1"), network("N_2", "other")}, nil)

	res, err := NewCopier(api, DefaultCopyConfig(), testLog(), nil).Run(context.Background(), org)
	if err != nil {
		t.Fatalf("Unexpected error from run: %v", err)
	}
	if res.Source != nil || res.Destination != nil || len(res.Requests) != 0 {
		t.Fatalf("Expected a no-op run, got %+v", res)
	}
}

func TestCopierOnlySourceTagged(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	api := mock_clientnames.NewMockAPI(mockCtrl)

	api.EXPECT().ListNetworks(gomock.Any(), org).Return([]dashboard.Network{network("S", srcTag)}, nil)
	api.EXPECT().ListClients(gomock.Any(), "S", span, 1000).Return([]dashboard.NetworkClient{client("01", "one")}, nil)

	res, err := NewCopier(api, DefaultCopyConfig(), testLog(), nil).Run(context.Background(), org)
	if err != nil {
		t.Fatalf("Unexpected error from run: %v", err)
	}
	if res.SourceClients != 1 || res.DestinationClients != 0 || len(res.Requests) != 0 {
		t.Fatalf("Unexpected result %+v", res)
	}
}

func TestCopierProvisionFailureAborts(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	api := mock_clientnames.NewMockAPI(mockCtrl)
	rejected := &dashboard.APIError{Method: "POST", Path: "/networks/D/clients/provision", StatusCode: 400, Status: "400 Bad Request"}

	api.EXPECT().ListNetworks(gomock.Any(), org).Return([]dashboard.Network{network("S", srcTag), network("D", dstTag)}, nil)
	api.EXPECT().ListClients(gomock.Any(), "S", span, 1000).Return([]dashboard.NetworkClient{client("01", "one"), client("02", "two")}, nil)
	api.EXPECT().ListClients(gomock.Any(), "D", span, 1000).Return([]dashboard.NetworkClient{client("01", ""), client("02", "")}, nil)
	api.EXPECT().ProvisionClients(gomock.Any(), "D", []dashboard.ProvisionClient{{MAC: "01", Name: "one"}}, "Normal").Return(nil, rejected)

	res, err := NewCopier(api, DefaultCopyConfig(), testLog(), nil).Run(context.Background(), org)
	if errors.Cause(err) != rejected {
		t.Fatalf("Expected the provisioning error, got %v", err)
	}
	if len(res.Requests) != 0 {
		t.Fatalf("Expected nothing provisioned, got %v", res.Requests)
	}
}

func TestCopierFetchFailureAborts(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	api := mock_clientnames.NewMockAPI(mockCtrl)
	unauthorized := errors.New("401 Unauthorized")

	api.EXPECT().ListNetworks(gomock.Any(), org).Return([]dashboard.Network{network("S", srcTag), network("D", dstTag)}, nil)
	api.EXPECT().ListClients(gomock.Any(), "S", span, 1000).Return(nil, unauthorized)

	if _, err := NewCopier(api, DefaultCopyConfig(), testLog(), nil).Run(context.Background(), org); err != unauthorized {
		t.Fatalf("Expected the fetch error, got %v", err)
	}
}

func TestCopierDryRun(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	api := mock_clientnames.NewMockAPI(mockCtrl)

	api.EXPECT().ListNetworks(gomock.Any(), org).Return([]dashboard.Network{network("S", srcTag), network("D", dstTag)}, nil)
	api.EXPECT().ListClients(gomock.Any(), "S", span, 1000).Return([]dashboard.NetworkClient{client("01", "one")}, nil)
	api.EXPECT().ListClients(gomock.Any(), "D", span, 1000).Return([]dashboard.NetworkClient{client("01", "")}, nil)
	api.EXPECT().ProvisionClients(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	cfg := DefaultCopyConfig()
	cfg.DryRun = true
	res, err := NewCopier(api, cfg, testLog(), nil).Run(context.Background(), org)
	if err != nil {
		t.Fatalf("Unexpected error from run: %v", err)
	}
	if !reflect.DeepEqual(res.Requests, []dashboard.ProvisionClient{{MAC: "01", Name: "one"}}) {
		t.Fatalf("Expected the planned request, got %v", res.Requests)
	}
}

func TestCopierCustomTags(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	api := mock_clientnames.NewMockAPI(mockCtrl)

	api.EXPECT().ListNetworks(gomock.Any(), org).Return([]dashboard.Network{network("S", "from"), network("D", srcTag)}, nil)
	api.EXPECT().ListClients(gomock.Any(), "S", time.Hour, 50).Return(nil, nil)
	api.EXPECT().ListClients(gomock.Any(), "D", time.Hour, 50).Return(nil, nil)

	cfg := CopyConfig{SourceTag: "from", DestinationTag: srcTag, Timespan: time.Hour, PerPage: 50, DevicePolicy: "Normal"}
	res, err := NewCopier(api, cfg, testLog(), nil).Run(context.Background(), org)
	if err != nil {
		t.Fatalf("Unexpected error from run: %v", err)
	}
	if res.Source.ID != "S" || res.Destination.ID != "D" {
		t.Fatalf("Unexpected selection %+v", res.Selection)
	}
}
