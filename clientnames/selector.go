package clientnames

import (
	"github.com/sirupsen/logrus"

	"github.com/twitter/copyclientnames/dashboard"
)

// Selection holds the networks picked for each role. Either may be nil.
type Selection struct {
	Source      *dashboard.Network
	Destination *dashboard.Network
}

// SelectNetworks walks networks in listing order. A network tagged srcTag
// becomes the source, otherwise one tagged dstTag becomes the destination;
// later matches replace earlier ones. Untagged networks are skipped.
func SelectNetworks(networks []dashboard.Network, srcTag, dstTag string, log *logrus.Entry) Selection {
	var sel Selection
	for i := range networks {
		n := &networks[i]
		switch {
		case n.HasTag(srcTag):
			if sel.Source != nil {
				log.Debugf("Source network %s replaced by %s", sel.Source.Name, n.Name)
			}
			log.Infof("Matched source network %s", n.Name)
			sel.Source = n
		case n.HasTag(dstTag):
			if sel.Destination != nil {
				log.Debugf("Dest network %s replaced by %s", sel.Destination.Name, n.Name)
			}
			log.Infof("Matched dest network %s", n.Name)
			sel.Destination = n
		}
	}
	return sel
}
