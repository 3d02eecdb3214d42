package gel_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGel(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Gel Suite")
}
