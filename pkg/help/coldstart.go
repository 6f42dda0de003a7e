package help

const ColdstartYAML = `# layout-blueprint Quick Start

inputs:
  markdown: "*.md / *.markdown files, split at # headings"
  html: "*.html / *.htm files, main article extracted with readability"
  directories: "expanded to the markdown and HTML files they contain"

output:
  stdout: "run summary (status, per-file results, stats) as json or yaml"
  output_dir: "one <name>.blueprint.<format> file per input"

commands:
  basic_build: |
    layout-blueprint build --inputs article.md

  many_files: |
    layout-blueprint build --inputs "content/*.md" --workers 8 --output-dir blueprints

  with_config: |
    layout-blueprint build --inputs article.md --config blueprint.yaml

  yaml_output: |
    layout-blueprint build --inputs article.md --format yaml

  filter_sections: |
    layout-blueprint build --inputs article.md --filter "weight:>=4,zone:main"

  to_stdout: |
    layout-blueprint build --inputs article.md --print

filters:
  weight: "weight:>=4, weight:<3, weight:=5"
  type: "type:faq|steps"
  zone: "zone:main or zone:supplementary"
  component: "component:hero|timeline"
  emphasis: "emphasis:hero|featured"

config_file: |
  options:
    is_core_topic: true
    main_intent: how to brew pour-over coffee
  style_profile:
    formality: 2
    energy: 4
    warmth: 5
    density: airy
    grid_style: asymmetric
    motion: static
    colors:
      primary: "#1f6feb"
  website_type: blog
  brief_sections:
    - heading: How to brew pour-over
      format_code: FS
      attribute_category: unique
    - heading: Related reading
      content_zone: SUPPLEMENTARY

exit_codes:
  0: "every input produced a blueprint"
  1: "some inputs failed"
  2: "all inputs failed or the run could not start"
`
