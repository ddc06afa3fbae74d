package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
const relNamespace = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

// xmlNode is a minimal DOM used to build and inspect document.xml.
type xmlNode struct {
	Name     xml.Name
	Attr     []xml.Attr
	Children []*xmlNode
	Text     string
	IsText   bool
}

// w builds a prefixed WordprocessingML element. Names are kept literal so the
// encoder writes "w:p" rather than inventing its own namespace prefixes.
func w(local string, attrs ...xml.Attr) *xmlNode {
	return &xmlNode{Name: xml.Name{Local: "w:" + local}, Attr: attrs}
}

func wAttr(local, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: "w:" + local}, Value: value}
}

func (n *xmlNode) add(children ...*xmlNode) *xmlNode {
	n.Children = append(n.Children, children...)
	return n
}

func textNode(text string) *xmlNode {
	return &xmlNode{IsText: true, Text: text}
}

// parseXMLDocument decodes xmlText into the DOM. The prolog and any
// processing instructions are skipped.
func parseXMLDocument(xmlText string) (*xmlNode, error) {
	decoder := xml.NewDecoder(strings.NewReader(xmlText))
	var stack []*xmlNode
	var root *xmlNode

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := &xmlNode{Name: t.Name, Attr: t.Attr}
			if len(stack) == 0 {
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			text := string([]byte(t))
			if text == "" {
				continue
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, textNode(text))
		}
	}

	if root == nil {
		return nil, errors.New("document.xml has no root element")
	}

	return root, nil
}

func encodeXMLDocument(root *xmlNode) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	encoder := xml.NewEncoder(&buf)
	if err := encodeXMLNode(encoder, root); err != nil {
		return "", err
	}
	if err := encoder.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func encodeXMLNode(encoder *xml.Encoder, node *xmlNode) error {
	if node.IsText {
		return encoder.EncodeToken(xml.CharData([]byte(node.Text)))
	}
	start := xml.StartElement{Name: node.Name, Attr: node.Attr}
	if err := encoder.EncodeToken(start); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := encodeXMLNode(encoder, child); err != nil {
			return err
		}
	}
	return encoder.EncodeToken(start.End())
}

func walkXML(node *xmlNode, visit func(*xmlNode) bool) bool {
	if node == nil {
		return true
	}
	if !visit(node) {
		return false
	}
	for _, child := range node.Children {
		if !walkXML(child, visit) {
			return false
		}
	}
	return true
}

func isElement(node *xmlNode, local string) bool {
	if node == nil || node.IsText {
		return false
	}
	if node.Name.Local != local {
		return false
	}
	return node.Name.Space == "" || node.Name.Space == wmlNamespace
}

func findElement(node *xmlNode, local string) *xmlNode {
	var found *xmlNode
	walkXML(node, func(n *xmlNode) bool {
		if isElement(n, local) {
			found = n
			return false
		}
		return true
	})
	return found
}

func attrValue(node *xmlNode, local string) string {
	if node == nil {
		return ""
	}
	for _, attr := range node.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

func paragraphText(p *xmlNode) string {
	var builder strings.Builder
	for _, node := range collectTextElements(p) {
		builder.WriteString(nodeText(node))
	}
	return builder.String()
}

func collectTextElements(node *xmlNode) []*xmlNode {
	out := []*xmlNode{}
	walkXML(node, func(n *xmlNode) bool {
		if isElement(n, "t") {
			out = append(out, n)
		}
		return true
	})
	return out
}

func nodeText(node *xmlNode) string {
	if node.IsText {
		return node.Text
	}
	var builder strings.Builder
	for _, child := range node.Children {
		if child.IsText {
			builder.WriteString(child.Text)
		}
	}
	return builder.String()
}

// checkParagraphs decodes a freshly built document.xml and confirms the body
// holds exactly want paragraphs.
func checkParagraphs(xmlText string, want int) error {
	root, err := parseXMLDocument(xmlText)
	if err != nil {
		return fmt.Errorf("document.xml parse failed: %w", err)
	}
	if got := len(collectParagraphs(root)); got != want {
		return fmt.Errorf("document.xml has %d paragraphs, want %d", got, want)
	}
	return nil
}
