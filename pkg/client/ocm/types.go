package ocm

type DubQuotaType string

const (
	DeveloperQuota DubQuotaType = "developer"
	StandardQuota  DubQuotaType = "standard"
)

type DubProduct string

const (
	DUBProduct      DubProduct = "DUB"
	DUBTrialProduct DubProduct = "DUBTrial"
)

const (
	ResourceName = "dub"
)

func (t DubQuotaType) GetProduct() DubProduct {
	if t == StandardQuota {
		return DUBProduct
	}

	return DUBTrialProduct
}

func (t DubQuotaType) GetResourceName() string {
	return ResourceName
}

func (t DubQuotaType) Equals(t1 DubQuotaType) bool {
	return t1.GetProduct() == t.GetProduct() && t1.GetResourceName() == t.GetResourceName()
}
