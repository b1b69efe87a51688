package metrics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"

	"github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	pModel "github.com/prometheus/common/model"
)

// gatherMetricFamily gathers all the metrics from the default registry and
// returns the family with the given fully qualified name, or nil
func gatherMetricFamily(t *testing.T, name string) *dto.MetricFamily {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, family := range families {
		if family.GetName() == name {
			return family
		}
	}
	return nil
}

func labelValue(metric *dto.Metric, name string) string {
	for _, label := range metric.GetLabel() {
		if label.GetName() == name {
			return label.GetValue()
		}
	}
	return ""
}

func TestIncreaseRepositoryOperationsCountMetrics(t *testing.T) {
	g := gomega.NewWithT(t)
	Reset()

	IncreaseRepositoryTotalOperationsCountMetric(constants.RepositoryOperationCreate)
	IncreaseRepositoryTotalOperationsCountMetric(constants.RepositoryOperationCreate)
	IncreaseRepositorySuccessOperationsCountMetric(constants.RepositoryOperationCreate)

	family := gatherMetricFamily(t, DubFleetManager+"_"+RepositoryOperationsTotalCount)
	g.Expect(family).ToNot(gomega.BeNil())
	g.Expect(family.GetType()).To(gomega.Equal(dto.MetricType_COUNTER))
	g.Expect(family.GetMetric()).To(gomega.HaveLen(1))
	g.Expect(labelValue(family.GetMetric()[0], labelOperation)).To(gomega.Equal(constants.RepositoryOperationCreate.String()))
	g.Expect(family.GetMetric()[0].GetCounter().GetValue()).To(gomega.Equal(float64(2)))

	family = gatherMetricFamily(t, DubFleetManager+"_"+RepositoryOperationsSuccessCount)
	g.Expect(family).ToNot(gomega.BeNil())
	g.Expect(family.GetMetric()[0].GetCounter().GetValue()).To(gomega.Equal(float64(1)))
}

func TestUpdateRepositoryRequestsStatusCountMetric(t *testing.T) {
	g := gomega.NewWithT(t)
	Reset()

	UpdateRepositoryRequestsStatusCountMetric(constants.RepositoryRequestStatusReady, 3)
	UpdateRepositoryRequestsStatusCountMetric(constants.RepositoryRequestStatusFailed, 1)

	family := gatherMetricFamily(t, DubFleetManager+"_"+RepositoryRequestsStatusCount)
	g.Expect(family).ToNot(gomega.BeNil())
	g.Expect(family.GetType()).To(gomega.Equal(dto.MetricType_GAUGE))

	counts := map[string]float64{}
	for _, metric := range family.GetMetric() {
		counts[labelValue(metric, LabelStatus)] = metric.GetGauge().GetValue()
	}
	g.Expect(counts).To(gomega.Equal(map[string]float64{
		constants.RepositoryRequestStatusReady.String():  3,
		constants.RepositoryRequestStatusFailed.String(): 1,
	}))
}

func TestUpdateRepositoryCreationDurationMetric(t *testing.T) {
	g := gomega.NewWithT(t)
	Reset()

	UpdateRepositoryCreationDurationMetric(JobTypeRepositoryCreate, 42*time.Second)

	family := gatherMetricFamily(t, DubFleetManager+"_"+RepositoryCreateRequestDuration)
	g.Expect(family).ToNot(gomega.BeNil())
	g.Expect(family.GetType()).To(gomega.Equal(dto.MetricType_HISTOGRAM))
	g.Expect(family.GetMetric()).To(gomega.HaveLen(1))
	g.Expect(family.GetMetric()[0].GetHistogram().GetSampleCount()).To(gomega.Equal(uint64(1)))
	g.Expect(family.GetMetric()[0].GetHistogram().GetSampleSum()).To(gomega.Equal(float64(42)))
}

func TestMetricNamesAreValidExposition(t *testing.T) {
	g := gomega.NewWithT(t)
	Reset()

	IncreaseReconcilerSuccessCount("repository")
	SetLeaderWorkerMetric("repository", true)

	family := gatherMetricFamily(t, DubFleetManager+"_"+ReconcilerSuccessCount)
	g.Expect(family).ToNot(gomega.BeNil())
	g.Expect(pModel.IsValidMetricName(pModel.LabelValue(family.GetName()))).To(gomega.BeTrue())

	// the gathered family has to round trip through the text exposition format
	var buf bytes.Buffer
	_, err := expfmt.MetricFamilyToText(&buf, family)
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(strings.Contains(buf.String(), DubFleetManager+"_"+ReconcilerSuccessCount)).To(gomega.BeTrue())
}
