package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
)

type Element struct {
	mock.Mock
}

func (e *Element) Id() int64 {
	args := e.Called()
	return args.Get(0).(int64)
}

func (e *Element) Type() models.ElementType {
	args := e.Called()
	return args.Get(0).(models.ElementType)
}

func (e *Element) GetAttribute(key string, locale string) (any, error) {
	args := e.Called(key, locale)
	return args.Get(0), args.Error(1)
}
