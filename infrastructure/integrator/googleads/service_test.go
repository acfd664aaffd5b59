package googleads

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator"
	googledomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func campaignRow(id, name, status string, costMicros int64, conversions, conversionsValue float64) googledomain.CampaignRow {
	return googledomain.CampaignRow{
		Campaign: googledomain.Campaign{
			ID:                     id,
			Name:                   name,
			Status:                 status,
			AdvertisingChannelType: "SEARCH",
			StartDate:              "2024-01-01",
			EndDate:                noEndDate,
		},
		Metrics: googledomain.Metrics{
			Impressions:      1000,
			Clicks:           50,
			CTR:              0.05,
			Conversions:      integrator.Float64(conversions),
			ConversionsValue: integrator.Float64(conversionsValue),
			CostMicros:       integrator.Int64(costMicros),
			AverageCPC:       50_000,
		},
	}
}

func adGroupRow(id, name string) googledomain.AdGroupRow {
	return googledomain.AdGroupRow{
		AdGroup: googledomain.AdGroup{
			ID:       id,
			Name:     name,
			Status:   "ENABLED",
			Campaign: "customers/1234567890/campaigns/42",
		},
		Campaign: googledomain.Campaign{ID: "42"},
	}
}

func adRow(id string) googledomain.AdRow {
	return googledomain.AdRow{
		AdGroupAd: googledomain.AdGroupAd{
			Status: "ENABLED",
			Ad: googledomain.Ad{
				ID:        id,
				FinalURLs: []string{"https://example.com/" + id},
				ResponsiveSearchAd: googledomain.ResponsiveSearchAd{
					Headlines: []googledomain.AdTextAsset{{Text: "Headline " + id}},
				},
			},
		},
		Campaign: googledomain.Campaign{ID: "42"},
		Metrics:  googledomain.Metrics{Impressions: 10, CostMicros: 1_000_000, Conversions: 1.4},
	}
}

func TestService_GetCampaigns(t *testing.T) {
	ctx := context.Background()
	queryErr := integrator.NewQueryError(integrator.VendorGoogleAds, "PERMISSION_DENIED/authorizationError:USER_PERMISSION_DENIED", "denied", "customer 1234567890", 403)

	tests := []struct {
		name       string
		opts       Options
		rows       []googledomain.CampaignRow
		clientErr  error
		expected   []*domain.Campaign
		wantErr    error
		assertions func(t *testing.T, campaigns []*domain.Campaign)
	}{
		{
			name: "Campanha ativa com micro-unidades convertidas",
			rows: []googledomain.CampaignRow{campaignRow("1", "Summer Sale", "ENABLED", 2_500_000, 10, 0)},
			assertions: func(t *testing.T, campaigns []*domain.Campaign) {
				require.Len(t, campaigns, 1)
				c := campaigns[0]
				assert.Equal(t, "Summer Sale", c.Name)
				assert.Equal(t, domain.StatusActive, c.Status)
				assert.Equal(t, domain.ChannelSearch, c.Channel)
				assert.Equal(t, 2.5, c.Spend)
				assert.Equal(t, int64(10), c.Conversions)
				assert.InDelta(t, 0.05, c.CPC, 1e-9)
				assert.Nil(t, c.EndDate)
				assert.Equal(t, 0.0, c.ROAS)
			},
		},
		{
			name: "ROAS usa o valor de conversões reportado",
			rows: []googledomain.CampaignRow{campaignRow("1", "Vendas", "PAUSED", 10_000_000, 4, 25)},
			assertions: func(t *testing.T, campaigns []*domain.Campaign) {
				require.Len(t, campaigns, 1)
				assert.Equal(t, domain.StatusPaused, campaigns[0].Status)
				assert.Equal(t, 2.5, campaigns[0].ROAS)
			},
		},
		{
			name: "ROAS estimado apenas com valor por conversão explícito",
			opts: Options{ConversionValue: 5},
			rows: []googledomain.CampaignRow{campaignRow("1", "Leads", "ENABLED", 10_000_000, 4, 0)},
			assertions: func(t *testing.T, campaigns []*domain.Campaign) {
				require.Len(t, campaigns, 1)
				assert.Equal(t, 2.0, campaigns[0].ROAS)
			},
		},
		{
			name: "Sem conversões o ROAS é zero",
			opts: Options{ConversionValue: 5},
			rows: []googledomain.CampaignRow{campaignRow("1", "Sem conversão", "ENABLED", 10_000_000, 0, 30)},
			assertions: func(t *testing.T, campaigns []*domain.Campaign) {
				require.Len(t, campaigns, 1)
				assert.Equal(t, 0.0, campaigns[0].ROAS)
			},
		},
		{
			name: "Status desconhecido vira UNKNOWN e a ordem é preservada",
			rows: []googledomain.CampaignRow{
				campaignRow("2", "B", "SOMETHING_NEW", 0, 0, 0),
				campaignRow("1", "A", "REMOVED", 0, 0, 0),
			},
			assertions: func(t *testing.T, campaigns []*domain.Campaign) {
				require.Len(t, campaigns, 2)
				assert.Equal(t, "2", campaigns[0].ID)
				assert.Equal(t, domain.StatusUnknown, campaigns[0].Status)
				assert.Equal(t, domain.StatusRemoved, campaigns[1].Status)
			},
		},
		{
			name: "Conta sem campanhas retorna lista vazia",
			rows: nil,
			assertions: func(t *testing.T, campaigns []*domain.Campaign) {
				assert.NotNil(t, campaigns)
				assert.Empty(t, campaigns)
			},
		},
		{
			name:      "Erro da plataforma é repassado sem alteração",
			clientErr: queryErr,
			wantErr:   queryErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			client.EXPECT().ListCampaigns(ctx, "1234567890").Return(tt.rows, tt.clientErr)

			campaigns, err := New(client, tt.opts).GetCampaigns(ctx, "1234567890")

			if tt.wantErr != nil {
				assert.Same(t, tt.wantErr, err)
				assert.Nil(t, campaigns)
				return
			}

			require.NoError(t, err)
			tt.assertions(t, campaigns)
		})
	}
}

func TestService_GetAdGroups(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	row := adGroupRow("7", "Grupo")
	row.Campaign.ID = ""
	row.Metrics = googledomain.Metrics{CostMicros: 3_000_000, Conversions: 2.6}
	client.EXPECT().ListAdGroups(ctx, "1234567890", "42").Return([]googledomain.AdGroupRow{row}, nil)

	groups, err := New(client, Options{}).GetAdGroups(ctx, "1234567890", "42")

	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "42", groups[0].CampaignID)
	assert.Equal(t, 3.0, groups[0].Spend)
	assert.Equal(t, int64(3), groups[0].Conversions)
	assert.Equal(t, domain.StatusActive, groups[0].Status)
}

func TestService_GetAds(t *testing.T) {
	ctx := context.Background()
	groups := []googledomain.AdGroupRow{adGroupRow("1", "G1"), adGroupRow("2", "G2"), adGroupRow("3", "G3")}
	failure := integrator.NewQueryError(integrator.VendorGoogleAds, "INTERNAL", "boom", "customer 1234567890 ad_group 2", 500)

	tests := []struct {
		name       string
		opts       Options
		setup      func(client *mocks.MockClient)
		wantErr    error
		expectedID []string
		groupNames []string
	}{
		{
			name: "Anúncios seguem a ordem dos grupos",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().ListAdGroups(gomock.Any(), "1234567890", "42").Return(groups, nil)
				client.EXPECT().ListAds(gomock.Any(), "1234567890", "1").Return([]googledomain.AdRow{adRow("10"), adRow("11")}, nil)
				client.EXPECT().ListAds(gomock.Any(), "1234567890", "2").Return(nil, nil)
				client.EXPECT().ListAds(gomock.Any(), "1234567890", "3").Return([]googledomain.AdRow{adRow("30")}, nil)
			},
			expectedID: []string{"10", "11", "30"},
			groupNames: []string{"G1", "G1", "G3"},
		},
		{
			name: "Falha no segundo grupo descarta tudo e não consulta o terceiro",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().ListAdGroups(gomock.Any(), "1234567890", "42").Return(groups, nil)
				client.EXPECT().ListAds(gomock.Any(), "1234567890", "1").Return([]googledomain.AdRow{adRow("10")}, nil)
				client.EXPECT().ListAds(gomock.Any(), "1234567890", "2").Return(nil, failure)
			},
			wantErr: failure,
		},
		{
			name: "Resultados parciais pulam o grupo com falha",
			opts: Options{PartialResults: true},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().ListAdGroups(gomock.Any(), "1234567890", "42").Return(groups, nil)
				client.EXPECT().ListAds(gomock.Any(), "1234567890", "1").Return([]googledomain.AdRow{adRow("10")}, nil)
				client.EXPECT().ListAds(gomock.Any(), "1234567890", "2").Return(nil, failure)
				client.EXPECT().ListAds(gomock.Any(), "1234567890", "3").Return([]googledomain.AdRow{adRow("30")}, nil)
			},
			expectedID: []string{"10", "30"},
			groupNames: []string{"G1", "G3"},
		},
		{
			name: "Falha ao listar grupos encerra sem consultar anúncios",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().ListAdGroups(gomock.Any(), "1234567890", "42").Return(nil, failure)
			},
			wantErr: failure,
		},
		{
			name: "Campanha sem grupos retorna lista vazia",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().ListAdGroups(gomock.Any(), "1234567890", "42").Return([]googledomain.AdGroupRow{}, nil)
			},
			expectedID: []string{},
			groupNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			ads, err := New(client, tt.opts).GetAds(ctx, "1234567890", "42")

			if tt.wantErr != nil {
				assert.Same(t, tt.wantErr, err)
				assert.Nil(t, ads)
				return
			}

			require.NoError(t, err)
			ids := make([]string, 0, len(ads))
			names := make([]string, 0, len(ads))
			for _, ad := range ads {
				ids = append(ids, ad.ID)
				require.NotNil(t, ad.AdGroupName)
				names = append(names, *ad.AdGroupName)
			}
			assert.Equal(t, tt.expectedID, ids)
			assert.Equal(t, tt.groupNames, names)
		})
	}
}

func TestService_GetAds_ConcurrentKeepsOrder(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	var groups []googledomain.AdGroupRow
	for i := 1; i <= 8; i++ {
		groups = append(groups, adGroupRow(fmt.Sprint(i), fmt.Sprintf("G%d", i)))
	}
	client.EXPECT().ListAdGroups(gomock.Any(), "1234567890", "42").Return(groups, nil)

	var mu sync.Mutex
	calls := 0
	client.EXPECT().ListAds(gomock.Any(), "1234567890", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, adGroupID string) ([]googledomain.AdRow, error) {
			mu.Lock()
			calls++
			mu.Unlock()
			return []googledomain.AdRow{adRow(adGroupID + "0")}, nil
		}).Times(len(groups))

	ads, err := New(client, Options{Concurrency: 4}).GetAds(ctx, "1234567890", "42")

	require.NoError(t, err)
	require.Len(t, ads, len(groups))
	for i, ad := range ads {
		assert.Equal(t, fmt.Sprintf("%d0", i+1), ad.ID)
	}
	assert.Equal(t, len(groups), calls)
}

func TestNormalizeAd(t *testing.T) {
	row := adRow("99")
	row.AdGroupAd.Ad.Name = ""
	row.AdGroupAd.Ad.ImageAd.ImageURL = "https://cdn.example.com/img.png"

	ad := NormalizeAd(row, "Grupo")

	assert.Equal(t, "Headline 99", ad.Name)
	require.NotNil(t, ad.AdLink)
	assert.Equal(t, "https://example.com/99", *ad.AdLink)
	require.NotNil(t, ad.ThumbnailURL)
	assert.Equal(t, "https://cdn.example.com/img.png", *ad.ThumbnailURL)
	assert.Equal(t, 1.0, ad.Spend)
	assert.Equal(t, int64(1), ad.Conversions)

	row.AdGroupAd.Ad.FinalURLs = nil
	row.AdGroupAd.Ad.ImageAd.ImageURL = ""
	ad = NormalizeAd(row, "")
	assert.Nil(t, ad.AdLink)
	assert.Nil(t, ad.ThumbnailURL)
	assert.Nil(t, ad.AdGroupName)
}

func TestNormalizeCampaign_EndDate(t *testing.T) {
	row := campaignRow("1", "Com fim", "ENABLED", 0, 0, 0)
	row.Campaign.EndDate = "2025-03-31"

	c := NormalizeCampaign(row, 0)

	require.NotNil(t, c.EndDate)
	assert.Equal(t, "2025-03-31", *c.EndDate)
}
