package fun

import (
	"github.com/mandelsoft/cwm/pkg/extent"
	"github.com/mandelsoft/cwm/pkg/factory"
	"github.com/mandelsoft/cwm/pkg/model"
)

const NAME = factory.DEFAULT

func init() {
	factory.MustRegister(NAME, New)
}

// Cwm is the reference factory implementation. It creates
// the model elements and adds them to its extent.
type Cwm struct {
	extent *extent.Extent
}

var _ factory.Cwm = (*Cwm)(nil)

func New() factory.Cwm {
	return &Cwm{extent: extent.New()}
}

func (c *Cwm) Name() string {
	return NAME
}

func (c *Cwm) Foundation() factory.FoundationPackage {
	return (*foundation)(c)
}

func (c *Cwm) ObjectModel() factory.ObjectModelPackage {
	return (*objectModel)(c)
}

func (c *Cwm) Resource() factory.ResourcePackage {
	return (*resource)(c)
}

func (c *Cwm) Extent() *extent.Extent {
	return c.extent
}

// created adds a successfully created element to the extent.
func created[T model.Element](c *Cwm, e T, err error) (T, error) {
	if err != nil {
		var _nil T
		log.Debug("creation failed: {{error}}", "error", err)
		return _nil, err
	}
	c.extent.Add(e)
	return e, nil
}

func createdIndex(c *Cwm, i *model.Index, err error) (*model.Index, error) {
	i, err = created(c, i, err)
	if err == nil {
		for _, f := range i.IndexedFeatures() {
			c.extent.Add(f)
		}
	}
	return i, err
}
