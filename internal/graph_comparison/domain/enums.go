package domain

import (
	"fmt"
)

type ResourceKind uint8

const (
	ResourceNode ResourceKind = iota + 1
	ResourceTopic
	ResourceService
	ResourceParameter
)

var ResourceKinds = []ResourceKind{ResourceNode, ResourceTopic, ResourceService, ResourceParameter}

func (k ResourceKind) String() string {
	switch k {
	case ResourceNode:
		return "node"
	case ResourceTopic:
		return "topic"
	case ResourceService:
		return "service"
	case ResourceParameter:
		return "parameter"
	}
	return fmt.Sprintf("resource(%d)", uint8(k))
}

type LinkKind uint8

const (
	LinkPublisher LinkKind = iota + 1
	LinkSubscriber
	LinkServer
	LinkClient
	LinkGetter
	LinkSetter
)

var LinkKinds = []LinkKind{LinkPublisher, LinkSubscriber, LinkServer, LinkClient, LinkGetter, LinkSetter}

// String returns the display name used in reports.
func (k LinkKind) String() string {
	switch k {
	case LinkPublisher:
		return "topic publisher"
	case LinkSubscriber:
		return "topic subscriber"
	case LinkServer:
		return "service server"
	case LinkClient:
		return "service client"
	case LinkGetter:
		return "parameter reader"
	case LinkSetter:
		return "parameter writer"
	}
	return fmt.Sprintf("link(%d)", uint8(k))
}

// Target is the kind of resource the link points at.
func (k LinkKind) Target() ResourceKind {
	switch k {
	case LinkPublisher, LinkSubscriber:
		return ResourceTopic
	case LinkServer, LinkClient:
		return ResourceService
	case LinkGetter, LinkSetter:
		return ResourceParameter
	}
	return 0
}

// Inbound reports whether the edge runs from the target resource into the node.
func (k LinkKind) Inbound() bool {
	return k == LinkSubscriber || k == LinkServer || k == LinkGetter
}

// ItemKind names one of the categories the matching engine scores.
type ItemKind struct {
	Resource ResourceKind
	Link     LinkKind
}

func ResourceItem(k ResourceKind) ItemKind { return ItemKind{Resource: k} }

func LinkItem(k LinkKind) ItemKind { return ItemKind{Link: k} }

func (k ItemKind) IsLink() bool { return k.Link != 0 }

func (k ItemKind) String() string {
	if k.IsLink() {
		return k.Link.String()
	}
	return k.Resource.String()
}

// MatchedKinds is the fixed partition order used by the matching engine.
var MatchedKinds = []ItemKind{
	ResourceItem(ResourceNode),
	ResourceItem(ResourceParameter),
	LinkItem(LinkPublisher),
	LinkItem(LinkSubscriber),
	LinkItem(LinkClient),
	LinkItem(LinkServer),
	LinkItem(LinkSetter),
	LinkItem(LinkGetter),
}

func ParseItemKind(s string) (ItemKind, error) {
	for _, k := range ResourceKinds {
		if k.String() == s {
			return ResourceItem(k), nil
		}
	}
	for _, k := range LinkKinds {
		if k.String() == s {
			return LinkItem(k), nil
		}
	}
	return ItemKind{}, fmt.Errorf("unknown item kind %q", s)
}

func (k ItemKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ItemKind) UnmarshalText(b []byte) error {
	v, err := ParseItemKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

func (k ResourceKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *ResourceKind) UnmarshalText(b []byte) error {
	v, err := ParseItemKind(string(b))
	if err != nil || v.IsLink() {
		return fmt.Errorf("unknown resource kind %q", b)
	}
	*k = v.Resource
	return nil
}

func (k LinkKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *LinkKind) UnmarshalText(b []byte) error {
	v, err := ParseItemKind(string(b))
	if err != nil || !v.IsLink() {
		return fmt.Errorf("unknown link kind %q", b)
	}
	*k = v.Link
	return nil
}
