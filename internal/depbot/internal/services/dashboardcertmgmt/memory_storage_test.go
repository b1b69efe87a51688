package dashboardcertmgmt

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/onsi/gomega"
)

func Test_memoryStorage_Load(t *testing.T) {
	type args struct {
		key   string
		value []byte
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "successfully loads the same value stored",
			args: args{
				key:   "some-key",
				value: []byte("some byte"),
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		testcase := tt
		t.Run(testcase.name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			storage := newInMemoryStorage()

			storeErr := storage.Store(context.Background(), testcase.args.key, testcase.args.value)
			g.Expect(storeErr != nil).To(gomega.Equal(testcase.wantErr))

			outputValue, loadErr := storage.Load(context.Background(), testcase.args.key)
			g.Expect(loadErr == nil)
			g.Expect(outputValue).To(gomega.Equal(testcase.args.value))
		})
	}
}

func Test_memoryStorage_Load_MissingKey(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)
	storage := newInMemoryStorage()

	_, err := storage.Load(context.Background(), "never-stored")
	g.Expect(errors.Is(err, fs.ErrNotExist)).To(gomega.BeTrue())
}

func Test_memoryStorage_Delete(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)
	storage := newInMemoryStorage()

	_ = storage.Store(context.Background(), "some-key", []byte("some byte"))
	g.Expect(storage.Exists(context.Background(), "some-key")).To(gomega.BeTrue())

	err := storage.Delete(context.Background(), "some-key")
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(storage.Exists(context.Background(), "some-key")).To(gomega.BeFalse())
}

func Test_memoryStorage_List(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)
	storage := newInMemoryStorage()

	_ = storage.Store(context.Background(), "certificates/domain.crt", []byte("crt"))
	_ = storage.Store(context.Background(), "certificates/domain.key", []byte("key"))
	_ = storage.Store(context.Background(), "acme/account", []byte("account"))

	keys, err := storage.List(context.Background(), "certificates/", true)
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(keys).To(gomega.ConsistOf("certificates/domain.crt", "certificates/domain.key"))
}

func Test_memoryStorage_Stat(t *testing.T) {
	t.Parallel()
	g := gomega.NewWithT(t)
	storage := newInMemoryStorage()

	value := []byte("some byte")
	_ = storage.Store(context.Background(), "some-key", value)

	info, err := storage.Stat(context.Background(), "some-key")
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(info.Key).To(gomega.Equal("some-key"))
	g.Expect(info.Size).To(gomega.Equal(int64(len(value))))
	g.Expect(info.Modified).ToNot(gomega.BeZero())

	_, err = storage.Stat(context.Background(), "never-stored")
	g.Expect(errors.Is(err, fs.ErrNotExist)).To(gomega.BeTrue())
}
