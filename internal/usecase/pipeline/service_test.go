package pipeline

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/SHADYEHABOCOR/gLabs/internal/adapters/oracle/static"
	"github.com/SHADYEHABOCOR/gLabs/internal/assets"
	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
	"github.com/SHADYEHABOCOR/gLabs/internal/ports"
	"github.com/SHADYEHABOCOR/gLabs/internal/usecase/jobs"
	"github.com/SHADYEHABOCOR/gLabs/internal/usecase/reconciler"
)

type memAssets struct{ byKey map[string]*domain.Asset }

func (m *memAssets) Get(_ context.Context, key string) (*domain.Asset, error) {
	return m.byKey[key], nil
}
func (m *memAssets) Put(_ context.Context, a *domain.Asset) error {
	m.byKey[a.Key] = a
	return nil
}
func (m *memAssets) ListKeys(_ context.Context) ([]string, error) {
	keys := make([]string, 0, len(m.byKey))
	for k := range m.byKey {
		keys = append(keys, k)
	}
	return keys, nil
}

type fakeNutrition struct{}

func (fakeNutrition) Estimate(_ context.Context, reqs []ports.NutritionRequest) ([]ports.NutritionResult, error) {
	out := make([]ports.NutritionResult, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, ports.NutritionResult{ID: r.ID, Calories: "450"})
	}
	return out, nil
}

func newService(oracle ports.Oracle, repo ports.AssetRepository) *Service {
	log := zap.NewNop()
	pool := jobs.NewPool(3, log)
	d := Deps{
		Reconciler: reconciler.New(oracle, pool, 25, log),
		Nutrition:  fakeNutrition{},
		Pool:       pool,
		BatchSize:  25,
		Log:        log,
	}
	if repo != nil {
		d.Resolver = assets.NewResolver(repo, 0.75, log)
	}
	return New(d)
}

func TestRunEndToEnd(t *testing.T) {
	table := ports.Table{
		Header: []string{"Menu Item Name", "Description"},
		Rows: []map[string]string{
			{"Menu Item Name": "Chicken Burger", "Description": "Grilled chicken"},
			{"Menu Item Name": "[ar-ae]: برجر الدجاج", "Description": "[ar-ae]: دجاج مشوي"},
		},
	}
	res, err := newService(static.New(nil, nil), nil).Run(context.Background(), table, Options{Mode: ModeMenu})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Dataset.Records) != 1 {
		t.Fatalf("records = %d, want 1", len(res.Dataset.Records))
	}
	rec := res.Dataset.Records[0]
	checks := map[domain.Field]string{
		domain.FieldName:                 "Chicken Burger",
		domain.FieldName.Arabic():        "برجر الدجاج",
		domain.FieldDescription:          "Grilled chicken",
		domain.FieldDescription.Arabic(): "دجاج مشوي",
	}
	for f, want := range checks {
		if got := rec.GetField(f); got != want {
			t.Errorf("%s = %q, want %q", f, got, want)
		}
	}
	if len(res.Summary.Anomalies) != 0 {
		t.Errorf("anomalies = %v", res.Summary.Anomalies)
	}
	if res.Summary.ArabicTranslationsFound != 1 {
		t.Errorf("ArabicTranslationsFound = %d, want 1", res.Summary.ArabicTranslationsFound)
	}
	wantCols := []string{"Name", "NameArabic", "Description", "DescriptionArabic", "ItemId"}
	if !reflect.DeepEqual(res.Dataset.Columns, wantCols) {
		t.Errorf("columns = %v, want %v", res.Dataset.Columns, wantCols)
	}
}

func TestRunEmptyDataset(t *testing.T) {
	res, err := newService(static.New(nil, nil), nil).Run(context.Background(), ports.Table{Header: []string{"Name"}}, Options{Mode: ModeMenu})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Summary.ZeroItems {
		t.Error("ZeroItems not set")
	}
	if len(res.Summary.Anomalies) != 1 || res.Summary.Anomalies[0].Kind != domain.AnomalyEmptyDataset {
		t.Errorf("anomalies = %v", res.Summary.Anomalies)
	}
}

func TestRunZeroItems(t *testing.T) {
	table := ports.Table{
		Header: []string{"Menu Item Name"},
		Rows:   []map[string]string{{"Menu Item Name": "[ar-ae]: دجاج"}},
	}
	res, err := newService(static.New(nil, nil), nil).Run(context.Background(), table, Options{Mode: ModeMenu})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Summary.ZeroItems {
		t.Error("ZeroItems not set")
	}
	kinds := map[domain.AnomalyKind]bool{}
	for _, a := range res.Summary.Anomalies {
		kinds[a.Kind] = true
	}
	if !kinds[domain.AnomalyOrphanTranslation] || !kinds[domain.AnomalyZeroItems] {
		t.Errorf("anomalies = %v", res.Summary.Anomalies)
	}
}

func TestRunEnsureArabicWithOracle(t *testing.T) {
	oracle := static.New(map[string]string{"Beef Burger": "برجر اللحم"}, nil)
	table := ports.Table{
		Header: []string{"Menu Item Name"},
		Rows:   []map[string]string{{"Menu Item Name": "Beef Burger"}},
	}
	res, err := newService(oracle, nil).Run(context.Background(), table, Options{Mode: ModeMenu, EnsureArabic: true})
	if err != nil {
		t.Fatal(err)
	}
	rec := res.Dataset.Records[0]
	if got := rec.GetField(domain.FieldName.Arabic()); got != "برجر اللحم" {
		t.Errorf("NameArabic = %q", got)
	}
	if res.Summary.Translated != 1 {
		t.Errorf("Translated = %d", res.Summary.Translated)
	}
}

func TestRunResolvesImages(t *testing.T) {
	repo := &memAssets{byKey: map[string]*domain.Asset{
		assets.DeriveKey("Chicken Burger"): {Key: assets.DeriveKey("Chicken Burger"), ContentType: "image/png", Data: []byte{1, 2, 3}},
	}}
	table := ports.Table{
		Header: []string{"Menu Item Name", "Image"},
		Rows: []map[string]string{
			{"Menu Item Name": "Chicken Burger", "Image": ""},
			{"Menu Item Name": "Mystery Dish", "Image": ""},
			{"Menu Item Name": "Linked Dish", "Image": "https://cdn.example.com/x.png"},
		},
	}
	res, err := newService(static.New(nil, nil), repo).Run(context.Background(), table, Options{Mode: ModeMenu, ResolveImages: true})
	if err != nil {
		t.Fatal(err)
	}
	recs := res.Dataset.Records
	if got := recs[0].GetField(domain.FieldImageSource); got != string(domain.ImageSourceDatabase) {
		t.Errorf("resolved record source = %q", got)
	}
	if !strings.HasPrefix(recs[0].GetField(domain.FieldImageURL), "data:image/png;base64,") {
		t.Errorf("ImageUrl = %q", recs[0].GetField(domain.FieldImageURL))
	}
	if got := recs[1].GetField(domain.FieldImageSource); got != string(domain.ImageSourceNone) {
		t.Errorf("unresolved record source = %q", got)
	}
	if got := recs[2].GetField(domain.FieldImageSource); got != string(domain.ImageSourceExcel) {
		t.Errorf("excel record source = %q", got)
	}
	if res.Summary.ImagesResolved != 1 {
		t.Errorf("ImagesResolved = %d", res.Summary.ImagesResolved)
	}
}

func TestRunEstimatesCalories(t *testing.T) {
	table := ports.Table{
		Header: []string{"Menu Item Name", "Calories"},
		Rows: []map[string]string{
			{"Menu Item Name": "Chicken Burger", "Calories": ""},
			{"Menu Item Name": "Side Salad", "Calories": "120"},
		},
	}
	res, err := newService(static.New(nil, nil), nil).Run(context.Background(), table, Options{Mode: ModeMenu, EstimateCal: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Dataset.Records[0].GetField(domain.FieldCalories); got != "450" {
		t.Errorf("estimated Calories = %q", got)
	}
	if got := res.Dataset.Records[1].GetField(domain.FieldCalories); got != "120" {
		t.Errorf("existing Calories overwritten: %q", got)
	}
	if res.Summary.CaloriesEstimated != 1 {
		t.Errorf("CaloriesEstimated = %d", res.Summary.CaloriesEstimated)
	}
}
